package matrix

import (
	"bufio"
	"fmt"
	"io"
	"log"

	"github.com/auerlab/admatrix/vcall"
)

// Input is one named call stream to merge.
type Input struct {
	Name string
	R    io.Reader
}

type stream struct {
	rdr  *vcall.Reader
	cur  vcall.Call
	open bool
}

// Merger advances N sorted per-sample call streams in lockstep, emitting one
// row per distinct (chromosome, position) key to each of two sinks: the
// reference-allele depths and the full per-allele depth lists. Only one
// pending call per stream is buffered, so inputs of any size stream through.
type Merger struct {
	streams  []*stream
	nopen    int
	ref      *bufio.Writer
	refalt   *bufio.Writer
	progress uint64
	rows     uint64
}

// NewMerger primes one pending call per stream. A stream that is empty on
// its very first read is closed at origin; its column still appears in every
// row as ".". A malformed first record is an error.
func NewMerger(inputs []Input, ref, refalt io.Writer) (*Merger, error) {
	m := &Merger{
		streams: make([]*stream, len(inputs)),
		ref:     bufio.NewWriter(ref),
		refalt:  bufio.NewWriter(refalt),
	}
	for i, in := range inputs {
		s := &stream{rdr: vcall.NewReader(in.R, in.Name)}
		switch err := s.rdr.Read(&s.cur); err {
		case nil:
			s.open = true
			m.nopen++
		case io.EOF:
		default:
			return nil, err
		}
		m.streams[i] = s
	}
	return m, nil
}

// SetProgress makes Run log a row count every n rows. 0 disables.
func (m *Merger) SetProgress(n uint64) { m.progress = n }

// Run drives the merge until every stream has hit EOF, then flushes both
// sinks. It returns the number of rows emitted.
func (m *Merger) Run() (uint64, error) {
	for m.nopen > 0 {
		if err := m.emitRow(); err != nil {
			return m.rows, err
		}
		m.rows++
		if m.progress > 0 && m.rows%m.progress == 0 {
			log.Printf("%d rows", m.rows)
		}
	}
	if err := m.ref.Flush(); err != nil {
		return m.rows, err
	}
	return m.rows, m.refalt.Flush()
}

// emitRow writes one row for the minimum pending site key and advances every
// stream that contributed a cell.
func (m *Merger) emitRow() error {
	var low *vcall.Call
	for _, s := range m.streams {
		if s.open && (low == nil || s.cur.Less(low)) {
			low = &s.cur
		}
	}
	// copy the key: low aliases a pending call that advances below.
	site := vcall.Call{Chrom: low.Chrom, Pos: low.Pos}

	fmt.Fprintf(m.ref, "%s\t%d\t", site.Chrom, site.Pos)
	fmt.Fprintf(m.refalt, "%s\t%d\t", site.Chrom, site.Pos)

	for _, s := range m.streams {
		if !s.open || !s.cur.SameSite(&site) {
			m.ref.WriteString(".\t")
			m.refalt.WriteString(".\t")
			continue
		}
		refCell, allCell, err := vcall.SplitDepths(s.cur.Sample)
		if err != nil {
			return s.rdr.ParseErrorf("%s at %s:%d", err, site.Chrom, site.Pos)
		}
		m.ref.Write(refCell)
		m.ref.WriteByte('\t')
		m.refalt.Write(allCell)
		m.refalt.WriteByte('\t')

		switch err := s.rdr.Read(&s.cur); err {
		case nil:
			if s.cur.Less(&site) {
				return s.rdr.ParseErrorf("out of order: %s:%d after %s:%d",
					s.cur.Chrom, s.cur.Pos, site.Chrom, site.Pos)
			}
		case io.EOF:
			s.open = false
			m.nopen--
		default:
			return err
		}
	}
	// a tab precedes the newline; downstream consumers expect it.
	if err := m.ref.WriteByte('\n'); err != nil {
		return err
	}
	return m.refalt.WriteByte('\n')
}
