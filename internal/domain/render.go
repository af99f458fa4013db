package domain

import "time"

// DocumentFormat selects a document writer.
type DocumentFormat string

const (
	FormatText DocumentFormat = "text"
	FormatPDF  DocumentFormat = "pdf"
)

// Document is the writer-facing view of a rendered song: a heading plus
// monospaced page lines.
type Document struct {
	Heading string
	Lines   []string
}

// RenderArtifact represents a persisted render for reproducibility.
type RenderArtifact struct {
	ID string `json:"id"`

	SongPath    string `json:"song_path"`
	Title       string `json:"title"`
	Artist      string `json:"artist,omitempty"`
	OriginalKey string `json:"original_key"`
	Key         string `json:"key"`

	Format     DocumentFormat `json:"format"`
	OutputPath string         `json:"output_path,omitempty"`
	PageWidth  int            `json:"page_width"`

	CreatedAt time.Time `json:"created_at"`
	Lines     []string  `json:"lines"`
}
