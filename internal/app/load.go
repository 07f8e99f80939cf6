package app

import (
	"fmt"
	"io"
	"os"

	"uncurl/internal/grid"
)

// LoadRecords reads the whole RGB record stream from path, or from stdin
// when path is "-". The byte count must be a non-zero multiple of the
// record size; anything else is a configuration error reported before any
// mapping state exists.
func LoadRecords(path string) ([]byte, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s: no input data", path)
	}
	if len(data)%grid.RecordSize != 0 {
		return nil, fmt.Errorf("%s: %d bytes is not a multiple of %d (records are R,G,B byte triplets)",
			path, len(data), grid.RecordSize)
	}
	return data, nil
}
