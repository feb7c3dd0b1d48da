package matrix

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/biogo/hts/bgzf"
	"github.com/brentp/xopen"
)

// sink is one write-only matrix destination, by default a pipe into an
// external xz process.
type sink struct {
	io.Writer
	closers []func() error
}

// Close tears the sink down in order (e.g. pipe, subprocess wait, file),
// returning the first failure.
func (s *sink) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// suffix returns the output file extension for a compression format.
func suffix(format string) string {
	switch format {
	case "plain":
		return ".tsv"
	case "bgzf":
		return ".tsv.gz"
	}
	return ".tsv.xz"
}

// openSink creates path and wraps it for the given format. xz runs as an
// external subprocess at a moderate level so it keeps up with the merge
// instead of back-pressuring it.
func openSink(path, format string, level int) (*sink, error) {
	switch format {
	case "plain":
		w, err := xopen.Wopen(path)
		if err != nil {
			return nil, err
		}
		return &sink{Writer: w, closers: []func() error{w.Close}}, nil
	case "bgzf":
		fh, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		bz := bgzf.NewWriter(fh, 1)
		return &sink{Writer: bz, closers: []func() error{bz.Close, fh.Close}}, nil
	case "xz":
		fh, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		cmd := exec.Command("xz", fmt.Sprintf("-%d", level), "-c")
		cmd.Stdout = fh
		cmd.Stderr = os.Stderr
		stdin, err := cmd.StdinPipe()
		if err != nil {
			fh.Close()
			return nil, err
		}
		if err := cmd.Start(); err != nil {
			fh.Close()
			return nil, err
		}
		return &sink{Writer: stdin, closers: []func() error{stdin.Close, cmd.Wait, fh.Close}}, nil
	}
	return nil, fmt.Errorf("unknown compression format %q", format)
}
