// Package sortcheck verifies that every input listed in a manifest is
// parseable and sorted by (chromosome order, position), and summarizes
// per-sample reference depths. The merge assumes sorted inputs; running
// check first turns a silent bad merge into a diagnosed data error.
package sortcheck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	arg "github.com/alexflint/go-arg"
	"gonum.org/v1/gonum/stat"

	"github.com/auerlab/admatrix"
	"github.com/auerlab/admatrix/manifest"
	"github.com/auerlab/admatrix/vcall"
)

type cliargs struct {
	Manifest string `arg:"positional,required,help:file listing one single-sample VCF path per line"`
}

func (c cliargs) Version() string {
	return fmt.Sprintf("admatrix check %s", admatrix.Version)
}

// Stats summarizes one input stream.
type Stats struct {
	Path    string
	Records int
	Mean    float64
	StdDev  float64
}

// Check streams every call in r, verifying that site keys never go backwards
// and that every payload splits cleanly.
func Check(r *vcall.Reader) (Stats, error) {
	st := Stats{Path: r.Name()}
	var cur, prev vcall.Call
	var depths []float64
	for {
		err := r.Read(&cur)
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, err
		}
		if st.Records > 0 && cur.Less(&prev) {
			return st, r.ParseErrorf("out of order: %s:%d after %s:%d",
				cur.Chrom, cur.Pos, prev.Chrom, prev.Pos)
		}
		ref, _, serr := vcall.SplitDepths(cur.Sample)
		if serr != nil {
			return st, r.ParseErrorf("%s", serr)
		}
		d, derr := strconv.ParseFloat(string(ref), 64)
		if derr != nil {
			return st, r.ParseErrorf("non-numeric reference depth %q", ref)
		}
		depths = append(depths, d)
		st.Records++
		prev.Chrom, prev.Pos = cur.Chrom, cur.Pos
	}
	if len(depths) > 0 {
		st.Mean = stat.Mean(depths, nil)
	}
	if len(depths) > 1 {
		st.StdDev = stat.StdDev(depths, nil)
	}
	return st, nil
}

// Main is run from the dispatcher.
func Main() {
	cli := cliargs{}
	arg.MustParse(&cli)
	os.Exit(run(cli))
}

func run(cli cliargs) int {
	samples, err := manifest.Load(cli.Manifest)
	if err != nil {
		return fail(err)
	}
	defer manifest.Close(samples)

	fmt.Println("#path\trecords\tref_depth_mean\tref_depth_sd")
	for _, s := range samples {
		st, err := Check(vcall.NewReader(s.Rdr, s.Path))
		if err != nil {
			return fail(err)
		}
		fmt.Printf("%s\t%d\t%.2f\t%.2f\n", st.Path, st.Records, st.Mean, st.StdDev)
	}
	return 0
}

func fail(err error) int {
	fmt.Fprintf(os.Stderr, "check: %s\n", err)
	var (
		me *manifest.ManifestError
		oe *manifest.OpenError
	)
	switch {
	case errors.As(err, &me):
		return admatrix.ExitNoManifest
	case errors.As(err, &oe):
		return admatrix.ExitInputOpen
	}
	return admatrix.ExitDataError
}
