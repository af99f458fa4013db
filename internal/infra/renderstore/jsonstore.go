// Package renderstore keeps a JSON record of every written render plus a JSONL index.
package renderstore

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
)

const (
	defaultRendersDir = "renders"
	indexFile         = "index.jsonl"
)

type JSONStore struct {
	rootDir        string
	rendersDirName string
	writeIndex     bool
	now            func() time.Time
	newID          func() string
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: renders/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithIDs replaces uuid generation, for tests.
func WithIDs(next func() string) Option {
	return func(s *JSONStore) { s.newID = next }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.RendersDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultRendersDir
	}

	s := &JSONStore{
		rootDir:        root,
		rendersDirName: dir,
		now:            time.Now,
		newID:          func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

// IndexEntry is one line of index.jsonl.
type IndexEntry struct {
	ID        string                `json:"id"`
	File      string                `json:"file"`
	Title     string                `json:"title"`
	Key       string                `json:"key"`
	Format    domain.DocumentFormat `json:"format"`
	Output    string                `json:"output,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

func (s *JSONStore) dir() string { return filepath.Join(s.rootDir, s.rendersDirName) }

func (s *JSONStore) SaveRender(r domain.RenderArtifact) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "renderstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	toSave := r
	if toSave.CreatedAt.IsZero() {
		toSave.CreatedAt = s.now()
	}
	toSave.CreatedAt = toSave.CreatedAt.UTC()
	if toSave.ID == "" {
		toSave.ID = s.newID()
	}

	titlePart := r.Title
	if strings.TrimSpace(titlePart) == "" {
		titlePart = strings.TrimSuffix(filepath.Base(r.SongPath), filepath.Ext(r.SongPath))
	}
	slug := slugify(titlePart)
	if slug == "" {
		slug = "render"
	}
	if k := slugify(toSave.Key); k != "" {
		slug += "_" + k
	}

	filename, err := uniqueName(dir, fmt.Sprintf("%s_%s", toSave.CreatedAt.Format("20060102T150405Z"), slug))
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)

	b, err := json.MarshalIndent(toSave, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "renderstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "renderstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "renderstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, filename, toSave)
	}

	return toSave.ID, nil
}

// uniqueName returns base.json, or base_2.json, base_3.json... if taken.
func uniqueName(dir, base string) (string, error) {
	for n := 1; n < 1000; n++ {
		name := base + ".json"
		if n > 1 {
			name = fmt.Sprintf("%s_%d.json", base, n)
		}
		if _, err := os.Stat(filepath.Join(dir, name)); errors.Is(err, fs.ErrNotExist) {
			return name, nil
		}
	}
	return "", &domain.OpError{
		Op:   "renderstore.name",
		Kind: domain.KindExecution,
		Path: filepath.Join(dir, base),
		Err:  errors.New("too many renders with the same name"),
	}
}

func (s *JSONStore) appendIndex(dir, filename string, r domain.RenderArtifact) error {
	line, err := json.Marshal(IndexEntry{
		ID:        r.ID,
		File:      filename,
		Title:     r.Title,
		Key:       r.Key,
		Format:    r.Format,
		Output:    r.OutputPath,
		CreatedAt: r.CreatedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// List reads the index, oldest first. A missing index means no renders yet.
// Lines that do not parse are skipped.
func (s *JSONStore) List() ([]IndexEntry, error) {
	path := filepath.Join(s.dir(), indexFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &domain.OpError{Op: "renderstore.list", Kind: domain.KindExecution, Path: path, Err: err}
	}
	defer f.Close()

	var out []IndexEntry
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e IndexEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{Op: "renderstore.list", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return out, nil
}

// Load reads a stored artifact by the file name recorded in the index.
func (s *JSONStore) Load(file string) (domain.RenderArtifact, error) {
	path := filepath.Join(s.dir(), filepath.Base(file))
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.RenderArtifact{}, &domain.OpError{Op: "renderstore.load", Kind: domain.KindNotFound, Path: path, Err: err}
	}
	var r domain.RenderArtifact
	if err := json.Unmarshal(b, &r); err != nil {
		return domain.RenderArtifact{}, &domain.OpError{Op: "renderstore.load", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}
	return r, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == '#':
			b.WriteString("sharp")
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
