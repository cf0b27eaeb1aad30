package bitkit

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the algorithm for the compressed binary format.
type Compression uint8

const (
	// CompressionNone stores the words uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio, good for cold data).
	CompressionZSTD Compression = 2
)

// Compressed format:
// [1 byte compression][uint32 uncompressedSize][uint32 compressedSize][payload]
// where the payload is the plain binary format of WriteTo. compressedSize == 0
// means the payload is stored uncompressed, which also happens when
// compression does not pay (ratio above 0.9).
const compressedHeaderSize = 9

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoders = sync.Pool{
		New: func() any {
			enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
			return enc
		},
	}
	zstdDecoders = sync.Pool{
		New: func() any {
			dec, _ := zstd.NewReader(nil)
			return dec
		},
	}
)

// WriteCompressed writes the bitset to w in the compressed binary format.
func (b *BitSet) WriteCompressed(w io.Writer, c Compression) (int64, error) {
	plain, err := b.MarshalBinary()
	if err != nil {
		return 0, err
	}

	var compressed []byte
	switch c {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressLZ4(plain)
	case CompressionZSTD:
		compressed = compressZSTD(plain)
	default:
		return 0, fmt.Errorf("unknown compression type %d", c)
	}
	if err != nil {
		return 0, err
	}

	// Store uncompressed when compression does not help.
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(plain))*0.9 {
		compressed = nil
	}

	header, err := compressedHeader(c, len(plain), len(compressed))
	if err != nil {
		return 0, err
	}

	payload := compressed
	if payload == nil {
		payload = plain
	}

	if _, err := w.Write(header[:]); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}
	n := int64(len(header))
	written, err := w.Write(payload)
	n += int64(written)
	if err != nil {
		return n, fmt.Errorf("write payload: %w", err)
	}
	return n, nil
}

// ReadCompressed replaces the bitset's content with one read from r in the
// compressed binary format. The algorithm is detected from the header.
func (b *BitSet) ReadCompressed(r io.Reader) (int64, error) {
	var header [compressedHeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	n := int64(len(header))

	c := Compression(header[0])
	uncompressedSize := binary.LittleEndian.Uint32(header[1:])
	compressedSize := binary.LittleEndian.Uint32(header[5:])

	payloadSize := compressedSize
	if payloadSize == 0 {
		payloadSize = uncompressedSize
	}
	payload := make([]byte, payloadSize)
	read, err := io.ReadFull(r, payload)
	n += int64(read)
	if err != nil {
		return n, fmt.Errorf("read payload: %w", err)
	}

	plain := payload
	if compressedSize != 0 {
		switch c {
		case CompressionLZ4:
			plain = make([]byte, uncompressedSize)
			decoded, err := lz4.UncompressBlock(payload, plain)
			if err != nil {
				return n, fmt.Errorf("lz4 decompress: %w", err)
			}
			if uint32(decoded) != uncompressedSize {
				return n, errors.New("decompressed size mismatch")
			}
		case CompressionZSTD:
			dec := zstdDecoders.Get().(*zstd.Decoder)
			defer zstdDecoders.Put(dec)

			plain, err = dec.DecodeAll(payload, make([]byte, 0, uncompressedSize))
			if err != nil {
				return n, fmt.Errorf("zstd decompress: %w", err)
			}
			if uint32(len(plain)) != uncompressedSize {
				return n, errors.New("decompressed size mismatch")
			}
		default:
			return n, fmt.Errorf("unknown compression type %d", c)
		}
	}

	if err := b.UnmarshalBinary(plain); err != nil {
		return n, err
	}
	return n, nil
}

// compressedHeader builds the stream header. The size fields are 32-bit, so
// payloads past 4 GiB (capacity beyond roughly 1<<35 bits) cannot be
// described and are rejected rather than silently truncated.
func compressedHeader(c Compression, plainLen, compressedLen int) ([compressedHeaderSize]byte, error) {
	var header [compressedHeaderSize]byte
	if uint64(plainLen) > math.MaxUint32 || uint64(compressedLen) > math.MaxUint32 {
		return header, fmt.Errorf("bitset encoding of %d bytes exceeds the compressed format's 32-bit sizes", plainLen)
	}
	header[0] = byte(c)
	binary.LittleEndian.PutUint32(header[1:], uint32(plainLen))
	binary.LittleEndian.PutUint32(header[5:], uint32(compressedLen))
	return header, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) []byte {
	enc := zstdEncoders.Get().(*zstd.Encoder)
	defer zstdEncoders.Put(enc)

	return enc.EncodeAll(data, nil)
}
