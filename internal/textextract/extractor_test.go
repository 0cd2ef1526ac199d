package textextract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/octadecimal-ai/ai-finances-sub000/constants"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error

	gotName string
	gotArgs []string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.gotName = name
	s.gotArgs = args
	return s.stdout, s.stderr, s.err
}

func TestExtractPDF(t *testing.T) {
	stub := &stubRunner{stdout: []byte("page one\fpage two")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "invoice.pdf"))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if stub.gotName != "pdftotext" {
		t.Errorf("command = %q, want pdftotext", stub.gotName)
	}
	if res.Kind != constants.KindPDF || res.Method != "pdf-text" {
		t.Errorf("kind/method = %s/%s", res.Kind, res.Method)
	}
	if res.Pages != 2 {
		t.Errorf("Pages = %d, want 2", res.Pages)
	}
	if string(res.Content) != "page one\fpage two" {
		t.Errorf("Content = %q", res.Content)
	}
}

func TestExtractPDFFailure(t *testing.T) {
	stub := &stubRunner{stderr: []byte("Syntax Error: broken xref"), err: errors.New("exit status 1")}
	e := NewExtractor(Config{}, nil)
	e.runner = stub

	res, err := e.Extract(context.Background(), "broken.pdf")
	if err == nil {
		t.Fatal("want error")
	}
	if len(res.Warnings) == 0 || res.Warnings[0] != "Syntax Error: broken xref" {
		t.Errorf("Warnings = %v", res.Warnings)
	}
}

func TestExtractRawFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "feed.csv")
	if err := os.WriteFile(path, []byte("id_invoice;date\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{}, nil)
	res, err := e.Extract(context.Background(), path)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Kind != constants.KindCSV || res.Method != "raw" {
		t.Errorf("kind/method = %s/%s", res.Kind, res.Method)
	}
	if string(res.Content) != "id_invoice;date\n" {
		t.Errorf("Content = %q", res.Content)
	}
}

func TestExtractSizeLimit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.txt")
	if err := os.WriteFile(path, make([]byte, 64), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewExtractor(Config{MaxBytes: 16}, nil)
	if _, err := e.Extract(context.Background(), path); err == nil {
		t.Fatal("want size-limit error")
	}
}
