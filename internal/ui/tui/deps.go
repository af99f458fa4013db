package tui

import (
	"log/slog"

	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

type Deps struct {
	Root    string
	Songs   ports.SongLoader
	Catalog ports.SongCatalog

	Transposer *usecase.TransposeSong
	Renderer   *usecase.RenderSong

	// SongPath opens the preview directly and skips the song list.
	SongPath string

	Logger *slog.Logger
	Debug  bool
}
