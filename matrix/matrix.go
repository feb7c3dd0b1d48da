// Package matrix merges sorted single-sample VCFs into two allelic-depth
// matrices: reference depths and full per-allele depth lists. Rows are the
// union of sites across samples in genomic order; columns are samples in
// manifest order; "." marks a sample with no call at a site.
package matrix

import (
	"errors"
	"fmt"
	"log"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/fatih/color"

	"github.com/auerlab/admatrix"
	"github.com/auerlab/admatrix/manifest"
	"github.com/auerlab/admatrix/vcall"
)

type cliargs struct {
	Compress string `arg:"-z,help:output compression. one of xz (external xz pipe) bgzf or plain."`
	Level    int    `arg:"-l,help:xz compression level. moderate levels keep up with the merge."`
	Progress uint64 `arg:"-v,help:rows between progress reports. 0 for quiet."`
	Manifest string `arg:"positional,required,help:file listing one single-sample VCF path per line"`
	Prefix   string `arg:"positional,required,help:output stem. writes <stem>-ref and <stem>-ref+alt matrices."`
}

func (c cliargs) Version() string {
	return fmt.Sprintf("admatrix matrix %s", admatrix.Version)
}

// Main is run from the dispatcher.
func Main() {
	cli := cliargs{Compress: "xz", Level: 4, Progress: 1000000}
	p := arg.MustParse(&cli)
	switch cli.Compress {
	case "xz", "bgzf", "plain":
	default:
		p.Fail("compress must be one of: xz bgzf plain")
	}
	os.Exit(run(cli))
}

func run(cli cliargs) int {
	samples, err := manifest.Load(cli.Manifest)
	if err != nil {
		return fatal(err)
	}
	defer manifest.Close(samples)
	log.Printf("%d VCF files.", len(samples))

	refSink, err := openSink(cli.Prefix+"-ref"+suffix(cli.Compress), cli.Compress, cli.Level)
	if err != nil {
		return fatal(&sinkError{err})
	}
	altSink, err := openSink(cli.Prefix+"-ref+alt"+suffix(cli.Compress), cli.Compress, cli.Level)
	if err != nil {
		refSink.Close()
		return fatal(&sinkError{err})
	}

	inputs := make([]Input, len(samples))
	for i, s := range samples {
		inputs[i] = Input{Name: s.Path, R: s.Rdr}
	}
	m, err := NewMerger(inputs, refSink, altSink)
	if err != nil {
		return fatal(err)
	}
	m.SetProgress(cli.Progress)

	rows, err := m.Run()
	if err != nil {
		return fatal(err)
	}
	if err := refSink.Close(); err != nil {
		return fatal(&sinkError{err})
	}
	if err := altSink.Close(); err != nil {
		return fatal(&sinkError{err})
	}
	log.Printf("wrote %d rows for %d samples", rows, len(samples))
	return 0
}

type sinkError struct{ err error }

func (e *sinkError) Error() string { return e.err.Error() }

// fatal prints err the way the rest of the toolkit does and returns the
// sysexits code for its kind.
func fatal(err error) int {
	c := color.New(color.BgRed).Add(color.Bold)
	fmt.Fprintf(os.Stderr, "%s\n", c.SprintFunc()(fmt.Sprintf("ERROR: %s", err)))
	return exitFor(err)
}

func exitFor(err error) int {
	var (
		me *manifest.ManifestError
		oe *manifest.OpenError
		pe *manifest.PathError
		ve *vcall.ParseError
		se *sinkError
	)
	switch {
	case errors.As(err, &me):
		return admatrix.ExitNoManifest
	case errors.As(err, &oe):
		return admatrix.ExitInputOpen
	case errors.As(err, &pe), errors.As(err, &ve):
		return admatrix.ExitDataError
	case errors.As(err, &se):
		return admatrix.ExitOutputOpen
	}
	return 1
}
