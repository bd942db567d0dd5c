// Package compress provides the compression algorithms snapshot files can be
// stored with.
//
// Snapshots are whole-object reads and writes, so compressors work on
// complete byte slices and use standard container formats (zstd frames, lz4
// frames): a downloaded snapshot object is a regular .zst or .lz4 file any
// external tool can unpack. The object key records the algorithm through
// Ext, and ByExt selects the matching compressor on retrieval.
package compress

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressor compresses and decompresses whole snapshot payloads.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	// Name returns the stable algorithm name.
	Name() string
	// Ext returns the object key suffix for this algorithm ("" for none).
	Ext() string
}

// ByExt selects the compressor matching the object key's suffix.
// Keys without a known compression suffix map to None.
func ByExt(key string) Compressor {
	switch {
	case strings.HasSuffix(key, ".zst"):
		return Zstd{}
	case strings.HasSuffix(key, ".lz4"):
		return LZ4{}
	default:
		return None{}
	}
}

// ByName returns a built-in compressor by its stable name.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "none":
		return None{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// None stores payloads as-is.
type None struct{}

// Compress returns data unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Name returns "none".
func (None) Name() string { return "none" }

// Ext returns the empty suffix.
func (None) Ext() string { return "" }

// Zstd compresses payloads into zstd frames. Better ratio than LZ4; the
// usual choice for cold snapshot storage.
type Zstd struct{}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Compress encodes data as a single zstd frame.
func (Zstd) Compress(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, nil), nil
}

// Decompress decodes a zstd frame.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec := getZstdDecoder()
	defer zstdDecoderPool.Put(dec)
	return dec.DecodeAll(data, nil)
}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }

// Ext returns ".zst".
func (Zstd) Ext() string { return ".zst" }

// LZ4 compresses payloads into lz4 frames. Faster but looser than zstd.
type LZ4 struct{}

// Compress encodes data as an lz4 frame.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decodes an lz4 frame.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// Ext returns ".lz4".
func (LZ4) Ext() string { return ".lz4" }
