package tui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// guarded keeps the preview alive when a render or key handler panics: the stack goes
// to the log, the screen falls back to the original key and the footer says so.
type guarded struct {
	m   model
	log *slog.Logger
}

const crashToast = "Preview crashed, showing the original key (details in the log)"

func wrapSafe(m model, log *slog.Logger) guarded {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return guarded{m: m, log: log}
}

func (g guarded) Init() tea.Cmd { return g.m.Init() }

func (g guarded) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		g.logPanic("update", r, "msg", fmt.Sprintf("%T", msg), "key", g.m.key, "offset", g.m.offset)

		g.m = g.m.recovered()
		next, cmd = g, nil
		if g.m.loaded {
			cmd = cmdRender(g.m.deps, g.m.original, 0)
		}
	}()

	inner, c := g.m.Update(msg)
	switch v := inner.(type) {
	case model:
		g.m = v
	case guarded:
		g = v
	}
	return g, c
}

func (g guarded) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.logPanic("view", r)
			out = crashToast
		}
	}()
	return g.m.View()
}

func (g guarded) logPanic(phase string, r any, attrs ...any) {
	args := append([]any{"phase", phase, "panic", fmt.Sprint(r)}, attrs...)
	args = append(args, "stack", string(debug.Stack()))
	g.log.Error("preview.panic", args...)
}

// recovered resets the transposition; a preview opened without --song goes back to the list.
func (m model) recovered() model {
	if m.deps.SongPath == "" {
		m.scr = screenSongs
		m.loaded = false
	}
	m.offset = 0
	m.toast = crashToast
	return m
}

var _ tea.Model = guarded{}
