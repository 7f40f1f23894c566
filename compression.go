package csvframe

import (
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// compressionType represents the compression applied to a file.
type compressionType int

const (
	// compressionNone represents no compression
	compressionNone compressionType = iota
	// compressionGZ represents gzip compression
	compressionGZ
	// compressionBZ2 represents bzip2 compression
	compressionBZ2
	// compressionXZ represents xz compression
	compressionXZ
	// compressionZSTD represents zstd compression
	compressionZSTD
)

// newReader wraps reader with a decompression reader if needed. The
// returned close function releases decompressor resources; it does not
// close the underlying reader.
func (c compressionType) newReader(reader io.Reader) (io.Reader, func() error, error) {
	switch c {
	case compressionNone:
		return reader, func() error { return nil }, nil

	case compressionGZ:
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("csvframe: create gzip reader: %w", err)
		}
		return gzReader, gzReader.Close, nil

	case compressionBZ2:
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(reader), func() error { return nil }, nil

	case compressionXZ:
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("csvframe: create xz reader: %w", err)
		}
		// xz.Reader doesn't have a Close method
		return xzReader, func() error { return nil }, nil

	case compressionZSTD:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("csvframe: create zstd reader: %w", err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return nil, nil, fmt.Errorf("csvframe: unsupported compression type for reading: %v", c)
	}
}

// newWriter wraps writer with a compression writer if needed. The
// returned close function flushes and closes the compressor; it does
// not close the underlying writer.
func (c compressionType) newWriter(writer io.Writer) (io.Writer, func() error, error) {
	switch c {
	case compressionNone:
		return writer, func() error { return nil }, nil

	case compressionGZ:
		gzWriter := gzip.NewWriter(writer)
		return gzWriter, gzWriter.Close, nil

	case compressionBZ2:
		// bzip2 doesn't have a writer in the standard library
		return nil, nil, errors.New("csvframe: bzip2 compression is not supported for writing")

	case compressionXZ:
		xzWriter, err := xz.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("csvframe: create xz writer: %w", err)
		}
		return xzWriter, xzWriter.Close, nil

	case compressionZSTD:
		zstdWriter, err := zstd.NewWriter(writer)
		if err != nil {
			return nil, nil, fmt.Errorf("csvframe: create zstd writer: %w", err)
		}
		return zstdWriter, zstdWriter.Close, nil

	default:
		return nil, nil, fmt.Errorf("csvframe: unsupported compression type for writing: %v", c)
	}
}
