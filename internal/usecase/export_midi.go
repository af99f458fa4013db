package usecase

import (
	"context"
	"io"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
)

// DefaultBPM is used when no tempo is given.
const DefaultBPM = 100

type ExportMIDI struct {
	transposer *TransposeSong
	exporter   ports.MIDIExporter
}

func NewExportMIDI(sl ports.SongLoader, ex ports.MIDIExporter, opts ...TransposeOption) *ExportMIDI {
	return &ExportMIDI{transposer: NewTransposeSong(sl, opts...), exporter: ex}
}

// Execute writes the song, moved into the requested key, as MIDI to w.
func (uc *ExportMIDI) Execute(ctx context.Context, songPath string, kc KeyChange, bpm float64, w io.Writer) (domain.SheetMusic, error) {
	if bpm <= 0 {
		bpm = DefaultBPM
	}
	_, sheet, err := uc.transposer.Execute(ctx, songPath, kc)
	if err != nil {
		return domain.SheetMusic{}, err
	}
	if err := uc.exporter.ExportMIDI(sheet, bpm, w); err != nil {
		return domain.SheetMusic{}, err
	}
	return sheet, nil
}
