// internal/batchapp/options.go
package batchapp

import (
	"flag"
	"fmt"

	"swmsf/internal/cliutil"
	"swmsf/internal/version"
)

// Options holds batch-mode flags and the two positional directory roots.
type Options struct {
	Match    int
	Mismatch int
	Gap      int

	KeepPrefix bool
	Quiet      bool
	Version    bool

	InputRoot  string
	OutputRoot string
}

// Usage installs the batch help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: all-pairs Smith-Waterman alignment over a directory tree

Version: %s

Each immediate subdirectory of <input-root> is a sequence group; every
*.fa / *.fasta file in it is one single-record FASTA. Every unordered
pair within a group is aligned and written to
<output-root>/<group>/<group>_<base1>__<base2>.msf

Usage: %s [options] <input-root> <output-root>
`, name, version.Version, name)
		fs.PrintDefaults()
	}
}

// ParseArgs registers and parses all batch flags plus the two roots.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.IntVar(&opt.Match, "match", 2, "score for a residue match [2]")
	fs.IntVar(&opt.Mismatch, "mismatch", -1, "score for a residue mismatch [-1]")
	fs.IntVar(&opt.Gap, "gap", -1, "score for a gap (linear penalty) [-1]")
	fs.BoolVar(&opt.KeepPrefix, "keep-prefix", false, "keep group prefixes (text before first '_') in sequence names [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress per-pair progress and the summary on stderr [false]")
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
	if len(posArgs) != 2 {
		return opt, fmt.Errorf("expected <input-root> and <output-root>, got %d argument(s)", len(posArgs))
	}
	opt.InputRoot, opt.OutputRoot = posArgs[0], posArgs[1]
	return opt, nil
}
