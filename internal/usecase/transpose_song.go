package usecase

import (
	"context"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
	"github.com/cdclaxton/guitar-tab-generator/internal/transpose"
)

// KeyChange asks for a song to be moved into Key. An empty Key keeps the song's own key.
type KeyChange struct {
	Key string
	Up  bool
}

type TransposeSong struct {
	songs   ports.SongLoader
	maxFret int
}

type TransposeOption func(*TransposeSong)

// WithMaxFret bounds relocated notes. Non-positive values keep the default.
func WithMaxFret(n int) TransposeOption {
	return func(uc *TransposeSong) {
		if n > 0 {
			uc.maxFret = n
		}
	}
}

func NewTransposeSong(sl ports.SongLoader, opts ...TransposeOption) *TransposeSong {
	uc := &TransposeSong{songs: sl, maxFret: domain.MaxFret}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute loads a song and returns it in the requested key. The loaded song is
// returned as original so callers can report both keys.
func (uc *TransposeSong) Execute(ctx context.Context, songPath string, kc KeyChange) (original, out domain.SheetMusic, err error) {
	original, err = uc.songs.LoadSong(songPath)
	if err != nil {
		return domain.SheetMusic{}, domain.SheetMusic{}, err
	}
	out, err = uc.Apply(ctx, original, kc)
	if err != nil {
		return domain.SheetMusic{}, domain.SheetMusic{}, err
	}
	return original, out, nil
}

// Apply transposes an already loaded song.
func (uc *TransposeSong) Apply(ctx context.Context, sheet domain.SheetMusic, kc KeyChange) (domain.SheetMusic, error) {
	if kc.Key == "" || kc.Key == sheet.Key.String() {
		return sheet, nil
	}
	return transpose.Song(ctx, sheet, kc.Key, kc.Up, transpose.WithMaxFret(uc.maxFret))
}
