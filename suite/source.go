package suite

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/inhies/go-bytesize"
	"github.com/klauspost/compress/zstd"
)

// byteCountingReader tracks how many bytes have passed through it.
type byteCountingReader struct {
	reader    io.Reader
	bytesRead bytesize.ByteSize
}

func (r *byteCountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.bytesRead += bytesize.ByteSize(uint64(n))
	return n, err
}

// Source is an opened suite file, transparently decompressed.
type Source struct {
	Path string

	size    bytesize.ByteSize
	output  *byteCountingReader
	closers []func() error
}

// Open opens a suite file. Files ending in .zst or .bz2 are decompressed.
func Open(path string) (*Source, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	s := &Source{
		Path:    path,
		size:    bytesize.ByteSize(uint64(stat.Size())),
		closers: []func() error{file.Close},
	}

	var r io.Reader = file
	switch filepath.Ext(path) {
	case ".zst":
		zr, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("'%s': %v", path, err)
		}
		s.closers = append(s.closers, func() error { zr.Close(); return nil })
		r = zr
	case ".bz2":
		br, err := bzip2.NewReader(file, nil)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("'%s': %v", path, err)
		}
		s.closers = append(s.closers, br.Close)
		r = br
	}
	s.output = &byteCountingReader{reader: r}
	return s, nil
}

func (s *Source) Read(p []byte) (int, error) { return s.output.Read(p) }

// Size is the on-disk size of the file.
func (s *Source) Size() bytesize.ByteSize { return s.size }

// BytesRead is the amount of decompressed data read so far.
func (s *Source) BytesRead() bytesize.ByteSize { return s.output.bytesRead }

// Close releases the decompressor and the file.
func (s *Source) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// format returns the suite format extension with any compression suffix removed.
func format(path string) string {
	base := path
	switch filepath.Ext(base) {
	case ".zst", ".bz2":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return strings.ToLower(filepath.Ext(base))
}
