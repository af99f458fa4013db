// Package textwriter writes rendered songs as plain text.
package textwriter

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
)

type Writer struct{}

func New() *Writer { return &Writer{} }

var _ ports.DocumentWriter = (*Writer)(nil)

func (*Writer) Format() domain.DocumentFormat { return domain.FormatText }

// Write prints the heading, a blank line and the page lines with trailing blanks removed.
func (*Writer) Write(doc domain.Document, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if doc.Heading != "" {
		bw.WriteString(doc.Heading)
		bw.WriteString("\n\n")
	}
	for _, l := range doc.Lines {
		bw.WriteString(strings.TrimRight(l, " "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (tw *Writer) WriteDocument(doc domain.Document, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return writeErr(path, err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return writeErr(tmp, err)
	}
	if err := tw.Write(doc, f); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return writeErr(tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return writeErr(tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return writeErr(path, err)
	}
	return nil
}

func writeErr(path string, err error) error {
	return &domain.OpError{
		Op:   "textwriter.write",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
