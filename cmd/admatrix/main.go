package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/auerlab/admatrix"
	"github.com/auerlab/admatrix/matrix"
	"github.com/auerlab/admatrix/sortcheck"
)

type progPair struct {
	help string
	main func()
}

var progs = map[string]progPair{
	"matrix": {"merge single-sample VCFs into allelic-depth matrices", matrix.Main},
	"check":  {"verify manifest inputs are sorted and summarize depths", sortcheck.Main},
}

func printProgs() {
	var wtr io.Writer = os.Stdout
	fmt.Fprintf(wtr, "admatrix Version: %s\n\n", admatrix.Version)

	keys := make([]string, 0, len(progs))
	width := 0
	for k := range progs {
		keys = append(keys, k)
		if len(k) > width {
			width = len(k)
		}
	}
	sort.Strings(keys)
	fmtr := "%-" + strconv.Itoa(width) + "s : %s\n"
	for _, k := range keys {
		fmt.Fprintf(wtr, fmtr, k, progs[k].help)
	}
	os.Exit(admatrix.ExitUsage)
}

func main() {
	if len(os.Args) < 2 {
		printProgs()
	}
	p, ok := progs[os.Args[1]]
	if !ok {
		printProgs()
	}
	// remove the subcommand name before the tool parses its own args.
	os.Args = append(os.Args[:1], os.Args[2:]...)
	p.main()
}
