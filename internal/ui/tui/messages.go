package tui

import "github.com/cdclaxton/guitar-tab-generator/internal/domain"

type songsLoadedMsg struct {
	refs []domain.SongRef
	err  error
}

type songLoadedMsg struct {
	path  string
	sheet domain.SheetMusic
	err   error
}

// renderedMsg carries the page for one transposition offset. Stale offsets are dropped.
type renderedMsg struct {
	offset int
	key    string
	doc    domain.Document
	err    error
}
