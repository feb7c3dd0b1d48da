package vcall

import (
	"bytes"
	"fmt"
)

// SplitDepths splits a genotype payload into the reference-allele depth and
// the full comma-separated per-allele depth list. The payload's first
// colon-delimited field holds the per-allele depths, reference first, so for
// "5,3:20:8" it returns ("5", "5,3"). No arithmetic is done; both results
// alias the payload. A payload without a ':' or without a ',' in its first
// field is malformed.
func SplitDepths(sample []byte) (ref, all []byte, err error) {
	i := bytes.IndexByte(sample, ':')
	if i < 0 {
		return nil, nil, fmt.Errorf("no ':' in genotype payload %q", sample)
	}
	all = sample[:i]
	j := bytes.IndexByte(all, ',')
	if j < 0 {
		return nil, nil, fmt.Errorf("no ',' in allele depths %q", all)
	}
	return all[:j], all, nil
}
