package utils

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrNoROM is returned when an archive does not contain a ROM image.
var ErrNoROM = errors.New("archive contains no .gb or .gbc file")

// LoadFile loads the given file and performs decompression if necessary.
// The compression is asserted from the file extension; files without a
// known extension are returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to ext, the extension of the
// file it was read from. Archives (.zip, .7z) yield their first
// .gb or .gbc entry.
func Decompress(ext string, data []byte) ([]byte, error) {
	var (
		decoder io.Reader
		err     error
	)
	r := bytes.NewReader(data)

	switch strings.ToLower(ext) {
	case ".gz":
		decoder, err = gzip.NewReader(r)
	case ".zst":
		var d *zstd.Decoder
		if d, err = zstd.NewReader(r); err == nil {
			defer d.Close()
			decoder = d
		}
	case ".xz":
		decoder, err = xz.NewReader(r)
	case ".lz4":
		decoder = lz4.NewReader(r)
	case ".zip":
		zipReader, err := zip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		for _, f := range zipReader.File {
			if isROM(f.Name) {
				return readArchived(f.Open)
			}
		}
		return nil, ErrNoROM
	case ".7z":
		archive, err := sevenzip.NewReader(r, int64(len(data)))
		if err != nil {
			return nil, err
		}
		for _, f := range archive.File {
			if isROM(f.Name) {
				return readArchived(f.Open)
			}
		}
		return nil, ErrNoROM
	default:
		// return the data as is
		return data, nil
	}

	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", ext, err)
	}

	return io.ReadAll(decoder)
}

func readArchived(open func() (io.ReadCloser, error)) ([]byte, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

func isROM(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gb", ".gbc":
		return true
	}
	return false
}
