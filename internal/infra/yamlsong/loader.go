// Package yamlsong reads songs from YAML files.
package yamlsong

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
)

type Loader struct {
	songsDir string
	maxFret  int
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{songsDir: "songs", maxFret: domain.MaxFret}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithSongsDir(dir string) Option {
	return func(l *Loader) { l.songsDir = dir }
}

// WithMaxFret sets the highest fret accepted in song files.
func WithMaxFret(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.maxFret = n
		}
	}
}

var (
	_ ports.SongLoader  = (*Loader)(nil)
	_ ports.SongCatalog = (*Loader)(nil)
)

func (l *Loader) LoadSong(path string) (domain.SheetMusic, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.SheetMusic{}, &domain.OpError{
			Op:   "yamlsong.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	return l.Parse(path, b)
}

// Parse maps YAML bytes to a song; path is only used in error messages.
func (l *Loader) Parse(path string, b []byte) (domain.SheetMusic, error) {
	var ys yamlSong
	if err := yaml.Unmarshal(b, &ys); err != nil {
		return domain.SheetMusic{}, &domain.OpError{
			Op:   "yamlsong.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return mapper{path: path, maxFret: l.maxFret}.song(ys)
}

func (l *Loader) ListSongs(root string) ([]domain.SongRef, error) {
	dir := filepath.Join(root, l.songsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlsong.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.SongRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		title, _ := readSongTitle(p)
		if strings.TrimSpace(title) == "" {
			title = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.SongRef{Title: title, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Title < refs[j].Title })
	return refs, nil
}

func readSongTitle(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Title, nil
}
