// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"swmsf-core/align"
	"swmsf-core/fasta"
	"swmsf/internal/cli"
	"swmsf/internal/msf"
	"swmsf/internal/version"
	"swmsf/internal/writers"
)

// RunContext executes one pairwise alignment: parse flags, load the two
// FASTA records, align, render MSF to stdout. Exit codes follow the house
// convention: 0 ok, 2 usage, 3 input/output failure, 130 cancellation.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("swmsf")
	fs.SetOutput(io.Discard)
	cli.Usage(fs, "swmsf")

	showUsage := func() int {
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"}) // registers flags for PrintDefaults
		return showUsage()
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return showUsage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		_ = showUsage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "swmsf version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	seq1, name1, code := loadSequence(parent, opts.File1, opts.KeepPrefix, stderr)
	if code != 0 {
		return code
	}
	seq2, name2, code := loadSequence(parent, opts.File2, opts.KeepPrefix, stderr)
	if code != 0 {
		return code
	}

	scheme := align.Scheme{Match: opts.Match, Mismatch: opts.Mismatch, Gap: opts.Gap}

	start := time.Now()
	res := align.New(scheme).Align(seq1, seq2)
	elapsed := time.Since(start)

	if !opts.Quiet {
		reportTiming(stderr, elapsed)
	}

	if err := msf.Write(outw, msf.NewBlock(name1, name2, res)); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run is the background-context convenience wrapper.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadSequence reads the first record of path, resolves its display name
// (header token, else file base name; group prefix stripped unless kept)
// and uppercases residues. Returns a non-zero exit code on failure.
func loadSequence(ctx context.Context, path string, keepPrefix bool, stderr io.Writer) ([]byte, string, int) {
	rec, err := fasta.ReadRecordPath(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, "", 130
		}
		_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", path, err)
		return nil, "", 3
	}
	name := rec.Name
	if name == "" {
		name = fasta.BaseName(path)
	}
	if !keepPrefix {
		name = fasta.StripGroupPrefix(name)
	}
	if len(rec.Seq) == 0 {
		_, _ = fmt.Fprintf(stderr, "error: %s: sequence %q is empty\n", path, name)
		return nil, "", 3
	}
	return fasta.Upper(rec.Seq), name, 0
}

// reportTiming mirrors the original tool's stderr report: microseconds
// below 10 ms, otherwise milliseconds with 3 decimals.
func reportTiming(stderr io.Writer, d time.Duration) {
	us := d.Microseconds()
	if us < 10000 {
		_, _ = fmt.Fprintf(stderr, "Execution time: %d µs\n", us)
		return
	}
	_, _ = fmt.Fprintf(stderr, "Execution time: %.3f ms\n", float64(us)/1000.0)
}
