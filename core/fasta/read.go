// core/fasta/read.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Record is one parsed FASTA sequence.
type Record struct {
	Name string
	Seq  []byte
}

// ReadRecordCtx parses the first FASTA record from r: a '>' header whose
// name is the token up to the first whitespace, then sequence lines with
// all whitespace stripped, until the next '>' header or EOF. A headerless
// file yields an empty Name (callers fall back to the file name). It is
// cancelable between scanned lines.
func ReadRecordCtx(ctx context.Context, r io.Reader) (Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var rec Record
	sawHeader := false
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return Record{}, ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if sawHeader || len(rec.Seq) > 0 {
				break // next record; we only want the first
			}
			rec.Name = parseHeaderName(line[1:])
			sawHeader = true
			continue
		}
		rec.Seq = append(rec.Seq, bytes.Join(bytes.Fields(line), nil)...)
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("fasta scan: %w", err)
	}
	return rec, nil
}

// ReadRecordPath opens path (gzip and "-" for stdin handled) and reads
// its first record.
func ReadRecordPath(ctx context.Context, path string) (Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return Record{}, err
	}
	defer func() { _ = rc.Close() }()
	return ReadRecordCtx(ctx, rc)
}

// ReadRecord is the background-context convenience wrapper.
func ReadRecord(path string) (Record, error) {
	return ReadRecordPath(context.Background(), path)
}

func parseHeaderName(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

// BaseName returns path's file name without directory or extension; the
// naming fallback for records whose header carries no name.
func BaseName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = base[:len(base)-len(ext)]
	}
	return base
}

// StripGroupPrefix drops a leading group tag through the first '_'
// (e.g. "BB11001_1aab" -> "1aab"). Names without an interior '_' pass
// through unchanged.
func StripGroupPrefix(name string) string {
	if i := strings.Index(name, "_"); i > 0 {
		return name[i+1:]
	}
	return name
}

// Upper uppercases residues in place and returns seq for chaining.
func Upper(seq []byte) []byte {
	for i, c := range seq {
		if c >= 'a' && c <= 'z' {
			seq[i] = c - ('a' - 'A')
		}
	}
	return seq
}
