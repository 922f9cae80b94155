package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmodel "github.com/goliatone/go-reportgen/pkg/model"
	pkgquery "github.com/goliatone/go-reportgen/pkg/query"
)

// LoadDocument reads a fixture and builds a query.Document using a file
// source. Testing helpers fail fast to keep contract tests concise.
func LoadDocument(t *testing.T, path string) pkgquery.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkgquery.Document, error) {
	if path == "" {
		return pkgquery.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgquery.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := pkgquery.NewDocument(pkgquery.SourceFromFile(path), data)
	if err != nil {
		return pkgquery.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// MustLoadResult loads a JSON golden file into a query.Result.
func MustLoadResult(t *testing.T, path string) pkgquery.Result {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	var out pkgquery.Result
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// MustLoadReportModel loads a JSON golden file into a ReportModel structure.
func MustLoadReportModel(t *testing.T, path string) pkgmodel.ReportModel {
	t.Helper()

	report, err := LoadReportModel(path)
	if err != nil {
		t.Fatalf("load report model: %v", err)
	}
	return report
}

// LoadReportModel reads a JSON fixture into a ReportModel, returning an error
// for callers managing setup outside of *testing.T.
func LoadReportModel(path string) (pkgmodel.ReportModel, error) {
	if path == "" {
		return pkgmodel.ReportModel{}, errors.New("testsupport: report model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.ReportModel{}, fmt.Errorf("testsupport: read report model: %w", err)
	}
	var out pkgmodel.ReportModel
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.ReportModel{}, fmt.Errorf("testsupport: unmarshal report model: %w", err)
	}
	return out, nil
}

// WriteReportModel writes a report model golden when UPDATE_GOLDENS is
// enabled. The JSON mirrors the builder output (including skip warnings) to
// keep snapshot diffs focused on behavioural changes.
func WriteReportModel(t *testing.T, path string, value pkgmodel.ReportModel) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal report model: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
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
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
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

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
