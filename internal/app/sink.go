package app

import (
	"fmt"
	"os"
	"strconv"
)

// Sink receives the original 1D record offset of a successful pick. The
// pick itself never does I/O; sinks do.
type Sink interface {
	Emit(index int) error
}

// WriteSink writes the picked offset as a decimal line. A path of "-"
// appends to stdout; any other path is rewritten on every pick, so the file
// always holds the latest offset.
type WriteSink struct {
	Path string
}

func (s WriteSink) Emit(index int) error {
	if s.Path == "-" {
		_, err := fmt.Fprintf(os.Stdout, "%d\n", index)
		return err
	}
	return os.WriteFile(s.Path, []byte(strconv.Itoa(index)+"\n"), 0o644)
}

// Sinks builds the click sinks the configuration asks for.
func (c *Config) Sinks() []Sink {
	sinks := make([]Sink, 0, len(c.WriteTargets))
	for _, path := range c.WriteTargets {
		sinks = append(sinks, WriteSink{Path: path})
	}
	return sinks
}
