package compression

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4"
)

// Method tags written in front of every payload.
const (
	methodRaw byte = 0
	methodLZ4 byte = 1
)

// maxPayload bounds the decoded length a header may claim.
const maxPayload = 64 << 20

// NoCompressor stores payloads raw.
type NoCompressor struct{}

// Name returns "none".
func (c *NoCompressor) Name() string {
	return "none"
}

// Compress frames data without compressing it.
func (c *NoCompressor) Compress(data []byte) ([]byte, error) {
	return frame(methodRaw, len(data), data), nil
}

// Decompress accepts any framed payload.
func (c *NoCompressor) Decompress(data []byte) ([]byte, error) {
	return Decompress(data)
}

// LZ4Compressor uses LZ4 block compression.
type LZ4Compressor struct{}

// Name returns "lz4".
func (c *LZ4Compressor) Name() string {
	return "lz4"
}

// Compress compresses data, falling back to a raw frame when LZ4 does not
// shrink it.
func (c *LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return frame(methodRaw, 0, nil), nil
	}

	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}
	if n == 0 || n >= len(data) {
		return frame(methodRaw, len(data), data), nil
	}
	return frame(methodLZ4, len(data), compressed[:n]), nil
}

// Decompress accepts any framed payload.
func (c *LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return Decompress(data)
}

// Decompress reads a framed payload written by any registered compressor.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("%w: short header", ErrCorrupt)
	}
	method := data[0]
	size, n := binary.Uvarint(data[1:])
	if n <= 0 || size > maxPayload {
		return nil, fmt.Errorf("%w: bad length", ErrCorrupt)
	}
	body := data[1+n:]

	switch method {
	case methodRaw:
		if uint64(len(body)) != size {
			return nil, fmt.Errorf("%w: length mismatch", ErrCorrupt)
		}
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	case methodLZ4:
		out := make([]byte, size)
		got, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
		if uint64(got) != size {
			return nil, fmt.Errorf("%w: length mismatch", ErrCorrupt)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: method %d", ErrCorrupt, method)
	}
}

func frame(method byte, size int, body []byte) []byte {
	out := make([]byte, 1+binary.MaxVarintLen64+len(body))
	out[0] = method
	n := binary.PutUvarint(out[1:], uint64(size))
	copy(out[1+n:], body)
	return out[:1+n+len(body)]
}
