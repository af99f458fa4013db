package usecase

import (
	"context"
	"fmt"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/layout"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
	"github.com/cdclaxton/guitar-tab-generator/internal/transpose"
)

// KeyCheck reports whether a song can be played in Key, trying up first and then down.
type KeyCheck struct {
	Key string
	Up  bool
	Err error
}

func (k KeyCheck) OK() bool { return k.Err == nil }

type ValidationReport struct {
	Song domain.SheetMusic
	Bars int
	Keys []KeyCheck
}

type ValidateSong struct {
	songs   ports.SongLoader
	maxFret int
}

func NewValidateSong(sl ports.SongLoader, maxFret int) *ValidateSong {
	if maxFret <= 0 {
		maxFret = domain.MaxFret
	}
	return &ValidateSong{songs: sl, maxFret: maxFret}
}

// Execute checks a song without writing anything: the file must parse, every bar must
// lay out, and every other key of the same quality is tried so the report shows where
// the song can be moved.
func (uc *ValidateSong) Execute(ctx context.Context, songPath string) (ValidationReport, error) {
	sheet, err := uc.songs.LoadSong(songPath)
	if err != nil {
		return ValidationReport{}, err
	}

	for si, sec := range sheet.Sections {
		for bi, bar := range sec.Bars {
			if _, err := layout.RenderBar(bar); err != nil {
				return ValidationReport{}, fmt.Errorf("section %d %q bar %d: %w", si+1, sec.Name, bi+1, err)
			}
		}
	}

	keys := domain.MajorKeys()
	if sheet.Key.IsMinor() {
		keys = domain.MinorKeys()
	}

	report := ValidationReport{Song: sheet, Bars: sheet.NumBars()}
	for _, k := range keys {
		if k == sheet.Key.String() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return ValidationReport{}, err
		}
		report.Keys = append(report.Keys, uc.tryKey(ctx, sheet, k))
	}
	return report, nil
}

func (uc *ValidateSong) tryKey(ctx context.Context, sheet domain.SheetMusic, key string) KeyCheck {
	check := KeyCheck{Key: key}
	for _, up := range []bool{true, false} {
		_, err := transpose.Song(ctx, sheet, key, up, transpose.WithMaxFret(uc.maxFret))
		if err == nil {
			check.Up = up
			check.Err = nil
			return check
		}
		check.Err = err
	}
	return check
}
