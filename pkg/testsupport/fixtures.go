package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/goliatone/go-mathsheet/pkg/model"
)

// Seed is the default seed used by deterministic tests.
const Seed int64 = 42

// Rand returns a generator seeded with seed so tests can replay draws.
func Rand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// ArithmeticWorksheet returns a small laid out add-minus worksheet.
func ArithmeticWorksheet() pkgmodel.Worksheet {
	return pkgmodel.Worksheet{
		ID:           "sheet-arith",
		Kind:         pkgmodel.WorksheetArithmetic,
		Title:        "Addition",
		Instructions: "Fill in the **answers**.",
		Lines: []string{
			" 3 +  7=     4 +  5=",
			"10 -  2=     6 +  1=",
		},
		Spacing: 1,
		Items:   []string{" 3 +  7=", " 4 +  5=", "10 -  2=", " 6 +  1="},
	}
}

// SequenceWorksheet returns a small laid out missing-number worksheet.
func SequenceWorksheet() pkgmodel.Worksheet {
	return pkgmodel.Worksheet{
		ID:    "sheet-seq",
		Kind:  pkgmodel.WorksheetMissingNumber,
		Title: "Missing numbers",
		Lines: []string{
			"95 ___ 105 110 ___ ___",
			"3 4 _ 6 _ 8 9",
		},
		Items: []string{"95 ___ 105 110 ___ ___", "3 4 _ 6 _ 8 9"},
	}
}

// LoadWorksheet reads a JSON fixture into a Worksheet.
func LoadWorksheet(t *testing.T, path string) pkgmodel.Worksheet {
	t.Helper()

	data := MustReadGolden(t, path)
	var sheet pkgmodel.Worksheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		t.Fatalf("unmarshal worksheet: %v", err)
	}
	return sheet
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	WriteMaybeGolden(t, path, payload)
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
