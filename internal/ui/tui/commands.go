package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/usecase"
)

const renderTimeout = 10 * time.Second

func cmdLoadSongs(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Catalog == nil {
			return songsLoadedMsg{err: errors.New("song catalog is nil")}
		}
		refs, err := deps.Catalog.ListSongs(deps.Root)
		return songsLoadedMsg{refs: refs, err: err}
	}
}

func cmdLoadSong(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		if deps.Songs == nil {
			return songLoadedMsg{path: path, err: errors.New("song loader is nil")}
		}
		sheet, err := deps.Songs.LoadSong(path)
		return songLoadedMsg{path: path, sheet: sheet, err: err}
	}
}

// cmdRender transposes the original song offset semitones within its quality and lays
// it out. Positive offsets move notes up the neck, negative ones down.
func cmdRender(deps Deps, original domain.SheetMusic, offset int) tea.Cmd {
	return func() tea.Msg {
		target := original.Key.Neighbour(offset)
		msg := renderedMsg{offset: offset, key: target.String()}

		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		log := deps.Logger
		start := time.Now()

		sheet, err := deps.Transposer.Apply(ctx, original, usecase.KeyChange{Key: target.String(), Up: offset >= 0})
		if err != nil {
			if log != nil {
				log.Warn("preview.transpose.failed", "from", original.Key.String(), "to", target.String(), "err", err)
			}
			msg.err = err
			return msg
		}

		msg.doc, msg.err = deps.Renderer.Compose(sheet)
		if log != nil && deps.Debug {
			log.Debug("preview.render",
				"key", target.String(),
				"offset", offset,
				"lines", len(msg.doc.Lines),
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
		}
		return msg
	}
}
