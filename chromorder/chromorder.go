// Package chromorder orders chromosome names in the usual genomic order:
// numbered chromosomes by value, then X, Y, MT, then any remaining contigs
// lexically. This is not lexical order: "2" sorts before "10".
package chromorder

import (
	"strconv"
	"strings"
)

// ranks for the non-numeric chromosomes. Numeric chromosomes rank as their
// value, so these must sit above any plausible chromosome number.
const (
	rankX     = 1 << 20
	rankY     = rankX + 1
	rankMT    = rankX + 2
	rankOther = rankX + 3
)

func rank(chrom string) int {
	if n, err := strconv.Atoi(chrom); err == nil && n > 0 {
		return n
	}
	switch strings.ToUpper(chrom) {
	case "X":
		return rankX
	case "Y":
		return rankY
	case "M", "MT":
		return rankMT
	}
	return rankOther
}

// trim drops a leading "chr" so that "chr1" and "1" rank together.
func trim(chrom string) string {
	if len(chrom) > 3 && (strings.HasPrefix(chrom, "chr") || strings.HasPrefix(chrom, "Chr")) {
		return chrom[3:]
	}
	return chrom
}

// Compare is a three-way compare of chromosome names. It returns a negative
// number if a sorts before b, a positive number if after, and 0 only when the
// names are identical. Names that rank together but differ as strings fall
// back to string order so that Compare remains a total order.
func Compare(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := rank(trim(a)), rank(trim(b))
	if ra != rb {
		return ra - rb
	}
	return strings.Compare(a, b)
}

// Less reports whether chromosome a sorts before chromosome b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}
