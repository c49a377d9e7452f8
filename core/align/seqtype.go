// core/align/seqtype.go
package align

// Type tags an alignment as nucleotide or protein for the MSF header.
type Type byte

const (
	Nucleotide Type = 'N'
	Protein    Type = 'P'
)

// DetectType inspects both aligned strings, skipping gaps. If every
// residue (case-insensitively) is one of A,C,G,T,U,N the alignment is
// Nucleotide; a single other symbol makes it Protein. Heuristic alphabet
// membership only, no biological validation.
func DetectType(aligned1, aligned2 string) Type {
	if !nucleotideOnly(aligned1) || !nucleotideOnly(aligned2) {
		return Protein
	}
	return Nucleotide
}

func nucleotideOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == GapByte {
			continue
		}
		switch foldUpper(s[i]) {
		case 'A', 'C', 'G', 'T', 'U', 'N':
		default:
			return false
		}
	}
	return true
}
