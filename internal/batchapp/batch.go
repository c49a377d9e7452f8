// internal/batchapp/batch.go
package batchapp

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"swmsf-core/align"
	"swmsf-core/fasta"
	"swmsf/internal/cli"
	"swmsf/internal/msf"
	"swmsf/internal/version"
)

// RunContext walks every sequence group under the input root and writes
// one MSF file per unordered pair. Pair-level failures are reported and
// skipped; the run exits 3 if any pair failed, 0 otherwise.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("swmsf-batch")
	fs.SetOutput(io.Discard)
	Usage(fs, "swmsf-batch")

	showUsage := func() int {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	if len(argv) == 0 {
		_, _ = ParseArgs(fs, []string{"-h"}) // registers flags for PrintDefaults
		return showUsage()
	}
	opts, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return showUsage()
		}
		_, _ = fmt.Fprintln(stderr, err)
		_ = showUsage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "swmsf-batch version %s\n", version.Version)
		return 0
	}

	groups, err := listGroups(opts.InputRoot)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 3
	}

	aligner := align.New(align.Scheme{Match: opts.Match, Mismatch: opts.Mismatch, Gap: opts.Gap})

	aligned, failed := 0, 0
	for _, group := range groups {
		files, err := listFastaFiles(filepath.Join(opts.InputRoot, group))
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			failed++
			continue
		}
		if len(files) < 2 {
			continue
		}
		outDir := filepath.Join(opts.OutputRoot, group)
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			failed++
			continue
		}
		for i := 0; i < len(files); i++ {
			for j := i + 1; j < len(files); j++ {
				select {
				case <-parent.Done():
					return 130
				default:
				}
				if err := alignPair(parent, aligner, opts, group, files[i], files[j], outDir); err != nil {
					_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
					failed++
					continue
				}
				aligned++
			}
		}
	}

	if !opts.Quiet {
		_, _ = fmt.Fprintf(stderr, "aligned %d pair(s)\n", aligned)
	}
	if failed > 0 {
		_, _ = fmt.Fprintf(stderr, "error: %d pair(s) failed\n", failed)
		return 3
	}
	return 0
}

// Run is the background-context convenience wrapper.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func alignPair(ctx context.Context, aligner *align.Aligner, opts Options, group, path1, path2, outDir string) error {
	seq1, name1, err := loadOne(ctx, path1, opts.KeepPrefix)
	if err != nil {
		return err
	}
	seq2, name2, err := loadOne(ctx, path2, opts.KeepPrefix)
	if err != nil {
		return err
	}

	res := aligner.Align(seq1, seq2)

	outName := fmt.Sprintf("%s_%s__%s.msf", group, fasta.BaseName(path1), fasta.BaseName(path2))
	outPath := filepath.Join(outDir, outName)
	fh, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := msf.Write(fh, msf.NewBlock(name1, name2, res)); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", outPath, err)
	}
	return fh.Close()
}

func loadOne(ctx context.Context, path string, keepPrefix bool) ([]byte, string, error) {
	rec, err := fasta.ReadRecordPath(ctx, path)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	name := rec.Name
	if name == "" {
		name = fasta.BaseName(path)
	}
	if !keepPrefix {
		name = fasta.StripGroupPrefix(name)
	}
	if len(rec.Seq) == 0 {
		return nil, "", fmt.Errorf("%s: sequence %q is empty", path, name)
	}
	return fasta.Upper(rec.Seq), name, nil
}

// listGroups returns the immediate subdirectory names of root, sorted.
func listGroups(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	var groups []string
	for _, e := range entries {
		if e.IsDir() {
			groups = append(groups, e.Name())
		}
	}
	sort.Strings(groups)
	return groups, nil
}

// listFastaFiles returns the *.fa / *.fasta paths in dir, sorted, so pair
// order (and output naming) is deterministic.
func listFastaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".fa") || strings.HasSuffix(name, ".fasta") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}
