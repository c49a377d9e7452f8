// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"

	"swmsf/internal/cliutil"
	"swmsf/internal/version"
)

// Options holds all CLI flags and the two positional FASTA paths.
type Options struct {
	// Scoring
	Match    int
	Mismatch int
	Gap      int

	// Naming
	KeepPrefix bool

	// Diagnostics
	Quiet   bool
	Version bool

	// Positionals
	File1 string
	File2 string
}

// Usage installs the standard help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pairwise local (Smith-Waterman) alignment, MSF/PileUp output

Version: %s

Usage: %s [options] <seq1.fasta> <seq2.fasta>

Paths may be shell-style globs (must resolve to exactly two files);
'-' reads from stdin. Gzip input is detected automatically.
`, name, version.Version, name)
		fs.PrintDefaults()
	}
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and the two positional FASTA paths may interleave.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Match, "match", 2, "score for a residue match [2]")
	fs.IntVar(&opt.Mismatch, "mismatch", -1, "score for a residue mismatch [-1]")
	fs.IntVar(&opt.Gap, "gap", -1, "score for a gap (linear penalty) [-1]")
	fs.BoolVar(&opt.KeepPrefix, "keep-prefix", false, "keep group prefixes (text before first '_') in sequence names [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the timing report on stderr [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "help", false, "show help [false]")
	fs.BoolVar(&help, "h", false, "show help (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	posArgs = append(posArgs, fs.Args()...)
	posArgs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	if len(posArgs) != 2 {
		return opt, fmt.Errorf("expected exactly 2 FASTA paths, got %d", len(posArgs))
	}
	opt.File1, opt.File2 = posArgs[0], posArgs[1]
	return opt, nil
}
