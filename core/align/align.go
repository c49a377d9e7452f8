// core/align/align.go
package align

// Scheme holds the three scoring parameters for local alignment.
// Negative mismatch/gap is the usual case but any integers are accepted.
type Scheme struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScheme matches the classic 2/-1/-1 nucleotide scoring.
var DefaultScheme = Scheme{Match: 2, Mismatch: -1, Gap: -1}

// Result is one finished local alignment. Both strings have equal length;
// '.' marks a gap (MSF convention).
type Result struct {
	Aligned1 string
	Aligned2 string
	Score    int
}

// GapByte is the gap marker used in aligned strings.
const GapByte = '.'

// Aligner runs Smith-Waterman local alignments with a fixed scheme.
type Aligner struct {
	scheme Scheme
}

// New creates a new Aligner.
func New(s Scheme) *Aligner { return &Aligner{scheme: s} }

// Traceback directions. dirNone doubles as the local-alignment floor:
// a cell whose best candidate does not beat 0 keeps it.
type direction uint8

const (
	dirNone direction = iota
	dirDiag
	dirUp
	dirLeft
)

// matrix is the DP arena: two flat slices addressed as row*cols+col.
// Row 0 and column 0 are the empty-prefix boundary (score 0, dirNone).
type matrix struct {
	cols  int
	score []int
	dir   []direction
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{
		cols:  cols,
		score: make([]int, rows*cols),
		dir:   make([]direction, rows*cols),
	}
}

func (m *matrix) at(i, j int) int { return i*m.cols + j }

func foldUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Align computes the optimal local alignment of seq1 against seq2.
// It is a pure function over its inputs; callers must reject empty
// sequences beforehand (the zero-length result is degenerate, not an
// error). Residues compare case-insensitively.
func (a *Aligner) Align(seq1, seq2 []byte) Result {
	len1, len2 := len(seq1), len(seq2)
	m := newMatrix(len1+1, len2+1)

	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			sub := a.scheme.Mismatch
			if foldUpper(seq1[i-1]) == foldUpper(seq2[j-1]) {
				sub = a.scheme.Match
			}
			diag := m.score[m.at(i-1, j-1)] + sub
			up := m.score[m.at(i-1, j)] + a.scheme.Gap
			left := m.score[m.at(i, j-1)] + a.scheme.Gap

			// Ordered tie-break: diag > up > left > zero. Each candidate
			// must strictly beat the running max, so equal challengers
			// lose to the earlier one and nothing displaces the 0 floor.
			best, dir := 0, dirNone
			if diag > best {
				best, dir = diag, dirDiag
			}
			if up > best {
				best, dir = up, dirUp
			}
			if left > best {
				best, dir = left, dirLeft
			}
			idx := m.at(i, j)
			m.score[idx] = best
			m.dir[idx] = dir
		}
	}

	// Row-major scan; the first occurrence of the max is the traceback
	// start, which keeps tied optima deterministic.
	maxScore, maxI, maxJ := 0, 0, 0
	for i := 1; i <= len1; i++ {
		for j := 1; j <= len2; j++ {
			if v := m.score[m.at(i, j)]; v > maxScore {
				maxScore, maxI, maxJ = v, i, j
			}
		}
	}

	a1, a2 := a.traceback(m, seq1, seq2, maxI, maxJ)
	return Result{Aligned1: string(a1), Aligned2: string(a2), Score: maxScore}
}

// traceback walks backward from (ti,tj) and returns the aligned byte
// strings already reversed into forward order. Two stop conditions:
// direction none at the current cell, and score 0 at the cell just moved
// to. The matrix boundary stops the walk implicitly (boundary cells carry
// no direction).
func (a *Aligner) traceback(m *matrix, seq1, seq2 []byte, ti, tj int) ([]byte, []byte) {
	var a1, a2 []byte
	for ti > 0 && tj > 0 {
		switch m.dir[m.at(ti, tj)] {
		case dirDiag:
			a1 = append(a1, seq1[ti-1])
			a2 = append(a2, seq2[tj-1])
			ti--
			tj--
		case dirUp:
			a1 = append(a1, seq1[ti-1])
			a2 = append(a2, GapByte)
			ti--
		case dirLeft:
			a1 = append(a1, GapByte)
			a2 = append(a2, seq2[tj-1])
			tj--
		default:
			return reverse(a1), reverse(a2)
		}
		if m.score[m.at(ti, tj)] == 0 {
			break
		}
	}
	return reverse(a1), reverse(a2)
}

func reverse(b []byte) []byte {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}
