// Package bitkit provides a dense, uncompressed bitset for Go.
//
// A BitSet stores bits in a growable sequence of 64-bit words with O(1) point
// access, word-wise set algebra, hardware popcount, and lazy iteration over
// set bits. A Small[T] covers the single-word case with a fixed capacity equal
// to the bit width of T.
//
// # Quick Start
//
//	b := bitkit.New(128)
//	_ = b.Set(3)
//	_ = b.Set(64)
//
//	on, _ := b.Get(3)      // true
//	n := b.Count()         // 2
//	for i := range b.Iterator() {
//	    fmt.Println(i)     // 3, 64
//	}
//
// # Set Algebra
//
// Binary operations require equal capacities and come in two styles:
// allocating (Union) and in-place (UnionWith):
//
//	a, _ := bitkit.FromIndices(16, 1, 2, 3)
//	c, _ := bitkit.FromIndices(16, 2, 3, 4)
//
//	u, _ := a.Union(c)     // {1, 2, 3, 4}
//	_ = a.IntersectWith(c) // a is now {2, 3}
//
// # Serialization
//
// WriteTo/ReadFrom and the encoding.BinaryMarshaler pair persist a bitset as a
// little-endian, length-prefixed word sequence, byte-exact across processes.
// WriteCompressed/ReadCompressed wrap the same format in LZ4 or ZSTD blocks:
//
//	var buf bytes.Buffer
//	_, _ = b.WriteCompressed(&buf, bitkit.CompressionZSTD)
//
// # Concurrency
//
// A BitSet is a plain value with no internal synchronization. Concurrent
// mutation without external locking is racy; partition bit ranges across
// goroutines or lock around the set when sharing is required.
package bitkit
