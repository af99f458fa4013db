// Package tui is the interactive preview: pick a song, read its tab and step it
// through keys of the same quality.
package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

type screen int

const (
	screenSongs screen = iota
	screenPreview
)

// chrome is the number of rows taken by header, footer and padding around the body.
const chrome = 8

type songItem struct {
	title string
	path  string
	rel   string
}

func (s songItem) Title() string       { return s.title }
func (s songItem) Description() string { return s.rel }
func (s songItem) FilterValue() string { return s.title }

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	songs list.Model
	view  viewport.Model

	original domain.SheetMusic
	loaded   bool
	offset   int
	key      string
	doc      domain.Document

	toast string
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Songs"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	m := model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenSongs,
		songs: l,
		view:  viewport.New(0, 0),
	}
	if deps.SongPath != "" {
		m.scr = screenPreview
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.deps.SongPath != "" {
		return cmdLoadSong(m.deps, m.deps.SongPath)
	}
	return cmdLoadSongs(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width-4, max(msg.Height-chrome, 1)
		m.songs.SetSize(w, h)
		m.view.Width = w
		m.view.Height = h
		return m, nil

	case songsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.logError("preview.songs.failed", msg.err)
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.refs))
		for _, r := range msg.refs {
			rel, err := filepath.Rel(m.deps.Root, r.Path)
			if err != nil {
				rel = r.Path
			}
			items = append(items, songItem{title: r.Title, path: r.Path, rel: rel})
		}
		return m, m.songs.SetItems(items)

	case songLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.logError("preview.load.failed", msg.err)
			return m, nil
		}
		m.original = msg.sheet
		m.loaded = true
		m.offset = 0
		m.key = msg.sheet.Key.String()
		m.scr = screenPreview
		m.toast = ""
		return m, cmdRender(m.deps, m.original, 0)

	case renderedMsg:
		if !m.loaded || msg.offset != m.offset {
			return m, nil
		}
		if msg.err != nil {
			m.toast = fmt.Sprintf("%s: %s", msg.key, userMessage(msg.err))
			return m, nil
		}
		m.key = msg.key
		m.doc = msg.doc
		m.toast = ""
		m.view.SetContent(renderDocument(msg.doc))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.scr == screenSongs {
			return m.updateSongs(msg)
		}
		return m.updatePreview(msg)
	}

	if m.scr == screenSongs {
		var cmd tea.Cmd
		m.songs, cmd = m.songs.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m model) updateSongs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.songs.FilterState() != list.Filtering {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			it, ok := m.songs.SelectedItem().(songItem)
			if !ok {
				return m, nil
			}
			return m, cmdLoadSong(m.deps, it.path)
		}
	}
	var cmd tea.Cmd
	m.songs, cmd = m.songs.Update(msg)
	return m, cmd
}

func (m model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		if m.deps.SongPath == "" {
			m.scr = screenSongs
			m.loaded = false
			m.toast = ""
		}
		return m, nil
	case "+", "=":
		return m.shift(1)
	case "-", "_":
		return m.shift(-1)
	case "r":
		if !m.loaded || m.offset == 0 {
			return m, nil
		}
		m.offset = 0
		return m, cmdRender(m.deps, m.original, 0)
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

// shift moves the target key n semitones, wrapping back to the original after an octave.
func (m model) shift(n int) (tea.Model, tea.Cmd) {
	if !m.loaded {
		return m, nil
	}
	m.offset += n
	if m.offset >= 12 || m.offset <= -12 {
		m.offset = 0
	}
	return m, cmdRender(m.deps, m.original, m.offset)
}

func (m model) logError(event string, err error) {
	if m.deps.Logger != nil {
		m.deps.Logger.Error(event, "err", err)
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("tabgen") + "  " + m.theme.Subtitle.Render(m.deps.Root) + "\n"

	footer := ""
	if m.toast != "" {
		footer = m.theme.Error.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenSongs:
		help := m.theme.Help.Render("↑/↓ navigate • enter preview • / search • q quit")
		return wrap.Render(header + "\n" + m.songs.View() + "\n" + footer + help)

	case screenPreview:
		if !m.loaded {
			return wrap.Render(header + "\nLoading…\n" + footer)
		}
		status := fmt.Sprintf("%s  key %s → %s (%s)",
			m.original.Header.Title,
			m.original.Key,
			m.theme.Key.Render(m.key),
			offsetLabel(m.offset),
		)
		help := m.theme.Help.Render("+/- transpose • r reset • ↑/↓ scroll • esc back • q quit")
		return wrap.Render(header + status + "\n" + m.theme.Card.Render(m.view.View()) + "\n" + footer + help)

	default:
		return wrap.Render(header + "\nunknown state")
	}
}
