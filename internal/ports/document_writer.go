package ports

import "github.com/cdclaxton/guitar-tab-generator/internal/domain"

// DocumentWriter turns laid out lines into a file on disk.
type DocumentWriter interface {
	Format() domain.DocumentFormat
	WriteDocument(doc domain.Document, path string) error
}
