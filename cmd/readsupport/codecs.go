package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Esysteme/readsupport/internal/compress"
	"github.com/Esysteme/readsupport/internal/compress/brotli"
	"github.com/Esysteme/readsupport/internal/compress/gzip"
	"github.com/Esysteme/readsupport/internal/compress/lz4"
	"github.com/Esysteme/readsupport/internal/compress/snappy"
	"github.com/Esysteme/readsupport/internal/compress/zstd"
	"github.com/Esysteme/readsupport/schema"
)

// codecs maps file extensions to the codec of schema dumps. Paths with other
// extensions are not compressed.
var codecs = map[string]compress.Codec{
	".br":  new(brotli.Codec),
	".gz":  new(gzip.Codec),
	".lz4": new(lz4.Codec),
	".sz":  new(snappy.Codec),
	".zst": new(zstd.Codec),
}

func codecOf(path string) compress.Codec {
	return codecs[strings.ToLower(filepath.Ext(path))]
}

func readSchema(path string) (*schema.Message, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if codec := codecOf(path); codec != nil {
		if b, err = codec.Decode(nil, b); err != nil {
			return nil, fmt.Errorf("decoding %s with %s: %w", path, codec, err)
		}
	}
	m, err := schema.Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

func writeSchema(path string, m *schema.Message) error {
	b := []byte(m.String() + "\n")
	if codec := codecOf(path); codec != nil {
		var err error
		if b, err = codec.Encode(nil, b); err != nil {
			return fmt.Errorf("encoding %s with %s: %w", path, codec, err)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
