package ports

import "github.com/cdclaxton/guitar-tab-generator/internal/domain"

// SongLoader loads songs from a source (e.g., filesystem).
type SongLoader interface {
	LoadSong(path string) (domain.SheetMusic, error)
}

// SongCatalog lists the songs available under a root directory.
type SongCatalog interface {
	ListSongs(root string) ([]domain.SongRef, error)
}
