package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/workspacefinder"
	"github.com/cdclaxton/guitar-tab-generator/internal/infra/yamlsong"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertFileExists(t, filepath.Join(tmp, "tabgen.yaml"))
	assertFileExists(t, filepath.Join(tmp, "songs", "house-of-the-rising-sun.yaml"))
	for _, d := range []string{"out", "renders", filepath.Join(".tabgen", "logs")} {
		info, err := os.Stat(filepath.Join(tmp, d))
		if err != nil || !info.IsDir() {
			t.Fatalf("expected dir %s, err=%v", d, err)
		}
	}
}

func TestInitializer_Init_TemplatesLoad(t *testing.T) {
	tmp := t.TempDir()
	if err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	cfg, err := workspacefinder.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("template config does not load: %v", err)
	}
	if cfg != domain.DefaultConfig() {
		t.Fatalf("expected template config to match defaults, got %+v", cfg)
	}

	refs, err := yamlsong.NewLoader().ListSongs(tmp)
	if err != nil || len(refs) != 1 {
		t.Fatalf("expected one example song, got %v %v", refs, err)
	}
	song, err := yamlsong.NewLoader().LoadSong(refs[0].Path)
	if err != nil {
		t.Fatalf("example song does not load: %v", err)
	}
	if song.Key.String() != "Am" || song.NumBars() == 0 {
		t.Fatalf("unexpected example song: %+v", song.Header)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "tabgen.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing tabgen.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read tabgen.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected tabgen.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read tabgen.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "tabgen:") {
		t.Fatalf("expected tabgen.yaml overwritten with template, got %q", string(b))
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s, stat err=%v", path, err)
	}
}
