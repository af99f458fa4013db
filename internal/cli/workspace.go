package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/midiexport"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/pdfwriter"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/renderstore"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/textwriter"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/workspacefinder"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/yamlsong"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
)

var locator ports.WorkspaceLocator = workspacefinder.NewFinder()

type workspaceCtx struct {
	root string
	cfg  domain.Config

	songs   ports.SongLoader
	catalog ports.SongCatalog

	writers []ports.DocumentWriter
	midi    ports.MIDIExporter
	store   *renderstore.JSONStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	songLoader := yamlsong.NewLoader(
		yamlsong.WithSongsDir(cfg.Paths.SongsDir),
		yamlsong.WithMaxFret(cfg.Transpose.MaxFret),
	)

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		songs:   songLoader,
		catalog: songLoader,
		writers: []ports.DocumentWriter{
			textwriter.New(),
			pdfwriter.New(cfg.Document),
		},
		midi:  midiexport.New(),
		store: renderstore.NewJSONStore(root, cfg, renderstore.WithIndex(true)),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `tabgen init`): %w", wd, err)
	}
	return root, nil
}

func resolveSongPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return "", fmt.Errorf("song is required (use --song or -s)")
	}

	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	songsDir := filepath.Join(ws.root, ws.cfg.Paths.SongsDir)

	if hasYAMLExt(in) {
		p := filepath.Join(songsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(songsDir, in+ext)
		if fileExists(p) {
			return p, nil
		}
	}

	// Last resort: match on the song title.
	refs, err := ws.catalog.ListSongs(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Title, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_song",
		Kind: domain.KindNotFound,
		Path: songsDir,
		Err:  fmt.Errorf("song %q: %w", in, domain.ErrNotFound),
	}
}

// defaultOutput places a rendered file under the workspace output dir, named after the
// song file and, when transposed, the target key.
func defaultOutput(ws *workspaceCtx, songPath, key, ext string) string {
	base := strings.TrimSuffix(filepath.Base(songPath), filepath.Ext(songPath))
	if key != "" {
		base += "_" + strings.ReplaceAll(key, "#", "sharp")
	}
	return filepath.Join(ws.root, ws.cfg.Paths.OutputDir, base+"."+ext)
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
