package storage

import (
	"bytes"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
)

// Compression schemes for backup blobs. The scheme in use is recorded
// in the backup envelope so old backups always decompress correctly.
const (
	CompressNone int32 = 0
	CompressLZW  int32 = 1
	CompressGZIP int32 = 2
)

// MaxDecompressedSize caps decompression output to guard against
// corrupt or hostile blobs (1 GiB).
const MaxDecompressedSize = 1 << 30

// Compress compresses data using the specified scheme.
func Compress(data []byte, scheme int32) ([]byte, error) {
	switch scheme {
	case CompressNone:
		return data, nil
	case CompressLZW:
		return compressLZW(data)
	case CompressGZIP:
		return compressGZIP(data)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, scheme)
	}
}

// Decompress decompresses data using the specified scheme.
func Decompress(data []byte, scheme int32) ([]byte, error) {
	switch scheme {
	case CompressNone:
		return data, nil
	case CompressLZW:
		r := lzw.NewReader(bytes.NewReader(data), lzw.LSB, 8)
		defer r.Close()
		return readCapped(r)
	case CompressGZIP:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
		}
		defer r.Close()
		return readCapped(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedCompression, scheme)
	}
}

func compressLZW(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lzw.NewWriter(&buf, lzw.LSB, 8)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compressGZIP(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// readCapped reads all of r but fails once output exceeds the cap.
func readCapped(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if len(data) > MaxDecompressedSize {
		return nil, ErrDecompressedTooLarge
	}
	return data, nil
}
