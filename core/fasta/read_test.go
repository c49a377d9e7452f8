// core/fasta/read_test.go
package fasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadRecordHeaderAndSequence(t *testing.T) {
	in := ">seq1 some description here\nACGT\nacg t\n\nTT\n"
	rec, err := ReadRecordCtx(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec.Name != "seq1" {
		t.Errorf("name = %q, want seq1 (token up to first whitespace)", rec.Name)
	}
	if string(rec.Seq) != "ACGTacgtTT" {
		t.Errorf("seq = %q, want whitespace-stripped concatenation", rec.Seq)
	}
}

func TestReadRecordStopsAtNextHeader(t *testing.T) {
	in := ">first\nAAAA\n>second\nTTTT\n"
	rec, err := ReadRecordCtx(context.Background(), strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec.Name != "first" || string(rec.Seq) != "AAAA" {
		t.Errorf("got %q/%q, want only the first record", rec.Name, rec.Seq)
	}
}

func TestReadRecordHeaderlessName(t *testing.T) {
	rec, err := ReadRecordCtx(context.Background(), strings.NewReader("ACGT\nTT\n"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec.Name != "" {
		t.Errorf("name = %q, want empty (caller falls back to file name)", rec.Name)
	}
	if string(rec.Seq) != "ACGTTT" {
		t.Errorf("seq = %q", rec.Seq)
	}
}

func TestReadRecordPathGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(">gz1\nACGT\n")); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	rec, err := ReadRecord(path)
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if rec.Name != "gz1" || string(rec.Seq) != "ACGT" {
		t.Errorf("gzip parse failed: %q/%q", rec.Name, rec.Seq)
	}
}

func TestReadRecordPathMissing(t *testing.T) {
	if _, err := ReadRecord(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadRecordCtxCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ReadRecordCtx(ctx, strings.NewReader(">x\nACGT\n"))
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestBaseName(t *testing.T) {
	cases := map[string]string{
		"/data/pairs/BB11001_1aab.fasta": "BB11001_1aab",
		"plain.fa":                       "plain",
		"noext":                          "noext",
		"archive.tar.gz":                 "archive.tar",
		".hidden":                        ".hidden",
	}
	for in, want := range cases {
		if got := BaseName(in); got != want {
			t.Errorf("BaseName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStripGroupPrefix(t *testing.T) {
	cases := map[string]string{
		"BB11001_1aab": "1aab",
		"a_b_c":        "b_c",
		"plain":        "plain",
		"_leading":     "_leading",
	}
	for in, want := range cases {
		if got := StripGroupPrefix(in); got != want {
			t.Errorf("StripGroupPrefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUpperInPlace(t *testing.T) {
	seq := []byte("acGT.n")
	if got := Upper(seq); !bytes.Equal(got, []byte("ACGT.N")) {
		t.Errorf("Upper = %q", got)
	}
}
