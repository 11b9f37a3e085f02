package schedule

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Load reads and decodes the snapshot at path. The file is closed before Load
// returns, whatever the outcome.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return LoadFromReader(f, path)
}

// LoadFromReader decodes a snapshot from r. name is only used in errors and in
// the document's Meta.
func LoadFromReader(r io.Reader, name string) (*Document, error) {
	br := bufio.NewReader(r)
	var src io.Reader = br
	compressed := false

	if magic, err := br.Peek(len(gzipMagic)); err == nil && bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, &LoadError{Path: name, Err: err}
		}
		defer zr.Close()
		src = zr
		compressed = true
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	doc, err := decode(data, name)
	if err != nil {
		return nil, err
	}
	doc.Meta.Compressed = compressed
	return doc, nil
}

// LoadFromBytes decodes a plain or gzip-compressed snapshot held in memory.
func LoadFromBytes(b []byte, name string) (*Document, error) {
	return LoadFromReader(bytes.NewReader(b), name)
}

func decode(data []byte, name string) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	doc.Meta = Meta{Source: name, Bytes: len(data)}
	return &doc, nil
}
