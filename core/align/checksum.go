// core/align/checksum.go
package align

// Checksum computes the GCG/MSF checksum of an aligned string: each
// position contributes ((i mod 57)+1) * code of the uppercased symbol,
// summed mod 10000. Gap markers participate like any other byte; that is
// what downstream MSF consumers expect.
func Checksum(s string) int {
	sum := 0
	for i := 0; i < len(s); i++ {
		sum += ((i % 57) + 1) * int(foldUpper(s[i]))
	}
	return sum % 10000
}

// CombinedChecksum folds two per-sequence checksums into the alignment
// checksum reported in the MSF header.
func CombinedChecksum(c1, c2 int) int { return (c1 + c2) % 10000 }
