package sortcheck

import (
	"math"
	"strings"
	"testing"

	"github.com/auerlab/admatrix/vcall"
)

func TestCheckSorted(t *testing.T) {
	in := "1\t10\t4,0:4\n1\t20\t8,1:9\n2\t5\t6,2:8\n"
	st, err := Check(vcall.NewReader(strings.NewReader(in), "a.vcf"))
	if err != nil {
		t.Fatal(err)
	}
	if st.Records != 3 {
		t.Errorf("expected 3 records, got %d", st.Records)
	}
	if math.Abs(st.Mean-6) > 1e-9 {
		t.Errorf("expected mean 6, got %f", st.Mean)
	}
	if st.StdDev <= 0 {
		t.Errorf("expected positive stddev, got %f", st.StdDev)
	}
}

func TestCheckOutOfOrder(t *testing.T) {
	in := "2\t5\t6,2:8\n1\t10\t4,0:4\n"
	_, err := Check(vcall.NewReader(strings.NewReader(in), "a.vcf"))
	pe, ok := err.(*vcall.ParseError)
	if !ok {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(pe.Msg, "out of order") {
		t.Errorf("unexpected message: %s", pe.Msg)
	}
}

func TestCheckBadDepth(t *testing.T) {
	in := "1\t10\tx,0:4\n"
	_, err := Check(vcall.NewReader(strings.NewReader(in), "a.vcf"))
	if err == nil {
		t.Fatal("expected an error for a non-numeric depth")
	}
}

func TestCheckEmpty(t *testing.T) {
	st, err := Check(vcall.NewReader(strings.NewReader(""), "a.vcf"))
	if err != nil {
		t.Fatal(err)
	}
	if st.Records != 0 || st.Mean != 0 || st.StdDev != 0 {
		t.Errorf("expected zero stats, got %+v", st)
	}
}
