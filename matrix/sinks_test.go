package matrix

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brentp/xopen"
)

func TestSuffix(t *testing.T) {
	if suffix("xz") != ".tsv.xz" || suffix("bgzf") != ".tsv.gz" || suffix("plain") != ".tsv" {
		t.Error("bad suffix mapping")
	}
}

func roundTrip(t *testing.T, format string) {
	t.Helper()
	p := filepath.Join(t.TempDir(), "out-ref"+suffix(format))
	s, err := openSink(p, format, 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Write([]byte("1\t100\t5\t6\t\n")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	rdr, err := xopen.Ropen(p)
	if err != nil {
		t.Fatal(err)
	}
	defer rdr.Close()
	line, err := rdr.ReadString('\n')
	if err != nil {
		t.Fatal(err)
	}
	if line != "1\t100\t5\t6\t\n" {
		t.Errorf("got %q", line)
	}
}

func TestPlainSink(t *testing.T) { roundTrip(t, "plain") }

func TestBgzfSink(t *testing.T) { roundTrip(t, "bgzf") }

func TestXzSink(t *testing.T) {
	if _, err := exec.LookPath("xz"); err != nil {
		t.Skip("xz not installed")
	}
	p := filepath.Join(t.TempDir(), "out-ref.tsv.xz")
	s, err := openSink(p, "xz", 4)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Write([]byte("1\t100\t5\t6\t\n")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	out, err := exec.Command("xz", "-dc", p).Output()
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "1\t100\t5\t6\t\n" {
		t.Errorf("got %q", out)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := openSink("x", "zip", 4); err == nil || !strings.Contains(err.Error(), "zip") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
