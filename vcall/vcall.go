// Package vcall reads variant calls from sorted single-sample VCF files.
// Only the chromosome, position and genotype payload are extracted; the
// payload is kept as opaque bytes until SplitDepths pulls the allele depths
// out of it.
package vcall

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/auerlab/admatrix/chromorder"
)

// Call is one single-sample variant record.
type Call struct {
	Chrom  string
	Pos    uint64
	Sample []byte
}

// Less orders calls by (chromosome order, position).
func (c *Call) Less(o *Call) bool {
	if v := chromorder.Compare(c.Chrom, o.Chrom); v != 0 {
		return v < 0
	}
	return c.Pos < o.Pos
}

// SameSite reports whether two calls address the same (chromosome, position)
// key.
func (c *Call) SameSite(o *Call) bool {
	return c.Pos == o.Pos && chromorder.Compare(c.Chrom, o.Chrom) == 0
}

// ParseError reports a malformed record with enough context to find it.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Reader yields successive calls from one sample stream, skipping
// "#"-prefixed header lines.
type Reader struct {
	name string
	br   *bufio.Reader
	line int
}

// NewReader returns a Reader over r. name is used in diagnostics only,
// usually the input path.
func NewReader(r io.Reader, name string) *Reader {
	return &Reader{name: name, br: bufio.NewReader(r)}
}

// Name returns the display name the reader was opened with.
func (r *Reader) Name() string { return r.name }

// ParseErrorf builds a ParseError located at the reader's current line.
func (r *Reader) ParseErrorf(format string, args ...interface{}) *ParseError {
	return &ParseError{File: r.name, Line: r.line, Msg: fmt.Sprintf(format, args...)}
}

// Read fills c with the next call. It returns io.EOF once the stream is
// exhausted and *ParseError on a malformed record. The contents of c are
// undefined after a non-nil return.
func (r *Reader) Read(c *Call) error {
	for {
		line, err := r.br.ReadBytes('\n')
		if len(line) == 0 {
			if err == nil || err == io.EOF {
				return io.EOF
			}
			return err
		}
		if err != nil && err != io.EOF {
			return err
		}
		r.line++
		line = bytes.TrimRight(line, "\r\n")
		if len(line) == 0 {
			return r.ParseErrorf("blank line")
		}
		if line[0] == '#' {
			continue
		}
		return r.parse(line, c)
	}
}

// parse splits one record line. The first field is the chromosome, the
// second the 1-based position and the last the genotype payload, so both
// full VCF records and minimal chrom/pos/payload records are accepted.
func (r *Reader) parse(line []byte, c *Call) error {
	toks := bytes.Split(line, []byte{'\t'})
	if len(toks) < 3 {
		return r.ParseErrorf("expected at least 3 tab-separated fields, got %d", len(toks))
	}
	pos, err := strconv.ParseUint(string(toks[1]), 10, 64)
	if err != nil || pos == 0 {
		return r.ParseErrorf("bad position %q", toks[1])
	}
	c.Chrom = string(toks[0])
	c.Pos = pos
	c.Sample = append(c.Sample[:0], toks[len(toks)-1]...)
	return nil
}
