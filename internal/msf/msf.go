// internal/msf/msf.go
package msf

import (
	"fmt"
	"io"

	"swmsf-core/align"
)

// Body layout constants from the GCG PileUp format: 50 aligned columns
// per line, a space after every 10 residues, names in a 12-wide field.
const (
	colsPerLine  = 50
	groupWidth   = 10
	nameFieldLen = 12
)

// Block is one renderable alignment: the engine's result plus the derived
// header metadata. It exists only for the duration of one Write.
type Block struct {
	Name1, Name2       string
	Aligned1, Aligned2 string
	Score              int
	Check1, Check2     int
	Combined           int
	Type               align.Type
}

// NewBlock derives checksums and the type tag from an alignment result.
func NewBlock(name1, name2 string, r align.Result) Block {
	c1 := align.Checksum(r.Aligned1)
	c2 := align.Checksum(r.Aligned2)
	return Block{
		Name1:    name1,
		Name2:    name2,
		Aligned1: r.Aligned1,
		Aligned2: r.Aligned2,
		Score:    r.Score,
		Check1:   c1,
		Check2:   c2,
		Combined: align.CombinedChecksum(c1, c2),
		Type:     align.DetectType(r.Aligned1, r.Aligned2),
	}
}

// Write renders the score line and the MSF (PileUp) block. The layout is
// byte-exact; header and body use independent column rules. A score-0
// alignment still gets the full header with an empty body.
func Write(w io.Writer, b Block) error {
	alignLen := len(b.Aligned1)

	if _, err := fmt.Fprintf(w, "Alignment score: %d\n\n", b.Score); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "PileUp\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   MSF:   %d  Type: %c    Check:  %4d   ..\n\n",
		alignLen, byte(b.Type), b.Combined); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, " Name: %s oo  Len:   %d  Check:  %4d  Weight:  10.0\n",
		b.Name1, alignLen, b.Check1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, " Name: %s oo  Len:   %d  Check:  %4d  Weight:  10.0\n\n",
		b.Name2, alignLen, b.Check2); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "//\n\n"); err != nil {
		return err
	}

	for start := 0; start < alignLen; start += colsPerLine {
		end := start + colsPerLine
		if end > alignLen {
			end = alignLen
		}
		if err := writeBodyLine(w, b.Name1, b.Aligned1[start:end]); err != nil {
			return err
		}
		if err := writeBodyLine(w, b.Name2, b.Aligned2[start:end]); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeBodyLine emits one name-prefixed sequence line, spacing after
// every 10th residue except when that residue ends the line.
func writeBodyLine(w io.Writer, name, seg string) error {
	line := make([]byte, 0, nameFieldLen+len(seg)+len(seg)/groupWidth+1)
	line = append(line, fmt.Sprintf("%-*s", nameFieldLen, name)...)
	for k := 0; k < len(seg); k++ {
		line = append(line, seg[k])
		if (k+1)%groupWidth == 0 && k < len(seg)-1 {
			line = append(line, ' ')
		}
	}
	line = append(line, '\n')
	_, err := w.Write(line)
	return err
}
