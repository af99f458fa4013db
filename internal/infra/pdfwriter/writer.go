// Package pdfwriter lays rendered songs onto A4 pages in a monospaced core font.
package pdfwriter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
)

// pointsToMM converts a font size to a line height with a little leading.
const pointsToMM = 0.3528 * 1.15

type Writer struct {
	cfg domain.DocumentConfig
}

func New(cfg domain.DocumentConfig) *Writer { return &Writer{cfg: cfg} }

var _ ports.DocumentWriter = (*Writer)(nil)

func (*Writer) Format() domain.DocumentFormat { return domain.FormatPDF }

// Build produces the PDF in memory. The heading is repeated at the top of every page.
func (w *Writer) Build(doc domain.Document) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(w.cfg.MarginMM, w.cfg.MarginMM, w.cfg.MarginMM)
	pdf.SetAutoPageBreak(true, w.cfg.MarginMM)
	pdf.SetTitle(doc.Heading, false)
	pdf.SetCreator("tabgen", false)

	lineH := w.cfg.FontSize * pointsToMM
	pdf.SetHeaderFunc(func() {
		if doc.Heading == "" {
			return
		}
		pdf.SetFont(w.cfg.FontFamily, "B", w.cfg.FontSize+2)
		pdf.CellFormat(0, lineH*1.5, doc.Heading, "", 1, "C", false, 0, "")
		pdf.Ln(lineH)
		pdf.SetFont(w.cfg.FontFamily, "", w.cfg.FontSize)
	})

	pdf.AddPage()
	pdf.SetFont(w.cfg.FontFamily, "", w.cfg.FontSize)
	for _, l := range doc.Lines {
		pdf.CellFormat(0, lineH, l, "", 1, "L", false, 0, "")
	}
	return pdf
}

// Write streams the PDF to out.
func (w *Writer) Write(doc domain.Document, out io.Writer) error {
	pdf := w.Build(doc)
	if err := pdf.Output(out); err != nil {
		return writeErr("", err)
	}
	return nil
}

func (w *Writer) WriteDocument(doc domain.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return writeErr(path, err)
	}
	pdf := w.Build(doc)
	if err := pdf.Error(); err != nil {
		return writeErr(path, err)
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return writeErr(path, err)
	}
	return nil
}

func writeErr(path string, err error) error {
	return &domain.OpError{
		Op:   "pdfwriter.write",
		Kind: domain.KindExecution,
		Path: path,
		Err:  fmt.Errorf("pdf: %w", err),
	}
}
