// Package manifest opens the per-sample inputs listed in a manifest file,
// one path per line. Manifest order is the public column identity of the
// output matrices, so the loader never reorders, deduplicates or skips.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brentp/xopen"
)

// MaxPath bounds a single manifest line. Longer lines are refused rather
// than truncated.
const MaxPath = 4096

// Sample is one opened input in manifest order. Inputs may be gzipped; the
// stream is transparently decompressed.
type Sample struct {
	Path string
	Rdr  io.ReadCloser
}

// ManifestError reports that the manifest itself could not be opened or read.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %s: %s", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// OpenError reports a listed input that could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %s", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// PathError reports a manifest line that cannot be a path. Blank lines are
// refused: silently skipping one would shift every later column.
type PathError struct {
	Line int
	Msg  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("manifest line %d: %s", e.Line, e.Msg)
}

// Load opens every input listed in path, preserving order. On any error the
// already-opened inputs are closed and a nil slice is returned.
func Load(path string) ([]Sample, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, &ManifestError{Path: path, Err: err}
	}
	defer fh.Close()

	samples, err := load(fh)
	if err != nil {
		Close(samples)
		var re *readError
		if errors.As(err, &re) {
			return nil, &ManifestError{Path: path, Err: re.err}
		}
		return nil, err
	}
	return samples, nil
}

type readError struct{ err error }

func (e *readError) Error() string { return e.err.Error() }

func load(fh *xopen.Reader) ([]Sample, error) {
	var samples []Sample
	lineno := 0
	for {
		line, err := fh.ReadString('\n')
		if err != nil && err != io.EOF {
			return samples, &readError{err}
		}
		if line == "" && err == io.EOF {
			return samples, nil
		}
		lineno++
		p := strings.TrimSpace(line)
		if p == "" {
			return samples, &PathError{Line: lineno, Msg: "blank line"}
		}
		if len(p) > MaxPath {
			return samples, &PathError{Line: lineno, Msg: fmt.Sprintf("path longer than %d bytes", MaxPath)}
		}
		rdr, rerr := xopen.Ropen(p)
		if rerr != nil {
			return samples, &OpenError{Path: p, Err: rerr}
		}
		samples = append(samples, Sample{Path: p, Rdr: rdr})
		if err == io.EOF {
			return samples, nil
		}
	}
}

// Close closes every opened input, keeping the first error.
func Close(samples []Sample) error {
	var first error
	for _, s := range samples {
		if err := s.Rdr.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
