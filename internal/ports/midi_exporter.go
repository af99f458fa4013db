package ports

import (
	"io"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// MIDIExporter writes the notes of a song as a Standard MIDI File.
type MIDIExporter interface {
	ExportMIDI(song domain.SheetMusic, bpm float64, w io.Writer) error
}
