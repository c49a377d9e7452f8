// internal/batchapp/batch_test.go
package batchapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func seed(t *testing.T, root, group, file, content string) {
	t.Helper()
	dir := filepath.Join(root, group)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func runBatch(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func TestBatchAllPairs(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	seed(t, in, "BB11001", "s1.fa", ">BB11001_1aab\nACACACTA\n")
	seed(t, in, "BB11001", "s2.fa", ">BB11001_1j46\nAGCACACA\n")
	seed(t, in, "BB11001", "s3.fasta", ">BB11001_2lef\nACGTACGT\n")
	seed(t, in, "BB11001", "notes.txt", "not a fasta\n")

	code, _, errOut := runBatch(t, in, out)
	if code != 0 {
		t.Fatalf("exit = %d, stderr = %s", code, errOut)
	}
	if !strings.Contains(errOut, "aligned 3 pair(s)") {
		t.Errorf("summary missing: %q", errOut)
	}

	for _, name := range []string{
		"BB11001_s1__s2.msf",
		"BB11001_s1__s3.msf",
		"BB11001_s2__s3.msf",
	} {
		data, err := os.ReadFile(filepath.Join(out, "BB11001", name))
		if err != nil {
			t.Fatalf("expected output %s: %v", name, err)
		}
		if !strings.HasPrefix(string(data), "Alignment score: ") {
			t.Errorf("%s does not look like an alignment:\n%s", name, data)
		}
	}
}

func TestBatchStripsPrefixInBlock(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	seed(t, in, "g", "a.fa", ">g_one\nACGT\n")
	seed(t, in, "g", "b.fa", ">g_two\nACGT\n")

	if code, _, _ := runBatch(t, "--quiet", in, out); code != 0 {
		t.Fatalf("exit = %d", code)
	}
	data, err := os.ReadFile(filepath.Join(out, "g", "g_a__b.msf"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), " Name: one oo") || !strings.Contains(string(data), " Name: two oo") {
		t.Errorf("prefixes not stripped:\n%s", data)
	}
}

func TestBatchSkipsSingletonGroups(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	seed(t, in, "solo", "only.fa", ">x\nACGT\n")

	code, _, errOut := runBatch(t, in, out)
	if code != 0 {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(errOut, "aligned 0 pair(s)") {
		t.Errorf("summary = %q", errOut)
	}
	if _, err := os.Stat(filepath.Join(out, "solo")); !os.IsNotExist(err) {
		t.Errorf("output dir created for singleton group")
	}
}

func TestBatchEmptySequenceFailsPair(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	seed(t, in, "g", "a.fa", ">a\n\n")
	seed(t, in, "g", "b.fa", ">b\nACGT\n")

	code, _, errOut := runBatch(t, in, out)
	if code != 3 {
		t.Fatalf("exit = %d, want 3", code)
	}
	if !strings.Contains(errOut, "is empty") || !strings.Contains(errOut, "1 pair(s) failed") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestBatchMissingInputRoot(t *testing.T) {
	if code, _, _ := runBatch(t, filepath.Join(t.TempDir(), "nope"), t.TempDir()); code != 3 {
		t.Fatalf("exit = %d, want 3", code)
	}
}

func TestBatchUsageError(t *testing.T) {
	if code, _, _ := runBatch(t, "only-one-root"); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}
