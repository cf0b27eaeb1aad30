package bitkit_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hupe1980/bitkit"
)

func Example() {
	b := bitkit.New(16)
	_ = b.Set(1)
	_ = b.Set(5)
	_ = b.Set(9)

	fmt.Println(b.Count())
	fmt.Println(b)
	// Output:
	// 3
	// {1, 5, 9}
}

// Example_algebra demonstrates the allocating and in-place operation styles.
func Example_algebra() {
	a, _ := bitkit.FromIndices(16, 1, 2, 3)
	b, _ := bitkit.FromIndices(16, 2, 3, 4)

	union, err := a.Union(b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(union)

	if err := a.IntersectWith(b); err != nil {
		log.Fatal(err)
	}
	fmt.Println(a)
	// Output:
	// {1, 2, 3, 4}
	// {2, 3}
}

// Example_iterator demonstrates lazy iteration over set bits.
func Example_iterator() {
	b, _ := bitkit.FromIndices(256, 0, 63, 64, 255)

	for i := range b.Iterator() {
		fmt.Println(i)
	}
	// Output:
	// 0
	// 63
	// 64
	// 255
}

// Example_serialization demonstrates the byte-exact binary round-trip.
func Example_serialization() {
	b, _ := bitkit.FromIndices(1000, 42, 999)

	var buf bytes.Buffer
	if _, err := b.WriteCompressed(&buf, bitkit.CompressionZSTD); err != nil {
		log.Fatal(err)
	}

	restored := bitkit.New(0)
	if _, err := restored.ReadCompressed(&buf); err != nil {
		log.Fatal(err)
	}
	fmt.Println(restored.Equal(b))
	fmt.Println(restored)
	// Output:
	// true
	// {42, 999}
}

// Example_small demonstrates the fixed single-word variant.
func Example_small() {
	flags := bitkit.SmallOf[uint8](0)
	_ = flags.Set(0)
	_ = flags.Set(3)

	fmt.Println(flags.Count())
	fmt.Printf("%08b\n", flags.Word())
	// Output:
	// 2
	// 00001001
}
