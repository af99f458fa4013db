package pdfwriter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

func TestWrite_ProducesPDF(t *testing.T) {
	w := New(domain.DefaultConfig().Document)
	var buf bytes.Buffer
	doc := domain.Document{Heading: "Song - Band", Lines: []string{"Key: E", "E|-0---|"}}
	if err := w.Write(doc, &buf); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestBuild_PaginatesLongSongs(t *testing.T) {
	w := New(domain.DefaultConfig().Document)
	lines := make([]string, 200)
	for i := range lines {
		lines[i] = "E|-0---|"
	}
	pdf := w.Build(domain.Document{Heading: "Long", Lines: lines})
	if pdf.Err() {
		t.Fatalf("unexpected pdf error: %v", pdf.Error())
	}
	if pdf.PageNo() < 2 {
		t.Fatalf("expected several pages, got %d", pdf.PageNo())
	}
}

func TestWriteDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "song.pdf")
	if err := New(domain.DefaultConfig().Document).WriteDocument(domain.Document{Lines: []string{"x"}}, path); err != nil {
		t.Fatalf("WriteDocument error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("expected non-empty pdf, err=%v", err)
	}
}
