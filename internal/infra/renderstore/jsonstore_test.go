package renderstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

func sampleArtifact() domain.RenderArtifact {
	return domain.RenderArtifact{
		SongPath:    "songs/house.yaml",
		Title:       "House of the Rising Sun",
		OriginalKey: "Am",
		Key:         "C#m",
		Format:      domain.FormatPDF,
		OutputPath:  "out/house.pdf",
		PageWidth:   80,
		CreatedAt:   time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC),
		Lines:       []string{"Key: C#m"},
	}
}

func TestSaveRender_CreatesJSONFile(t *testing.T) {
	tmp := t.TempDir()
	store := NewJSONStore(tmp, domain.DefaultConfig())

	id, err := store.SaveRender(sampleArtifact())
	if err != nil {
		t.Fatalf("SaveRender error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected uuid id, got %q: %v", id, err)
	}

	wantFile := filepath.Join(tmp, "renders", "20260203T101112Z_house-of-the-rising-sun_csharpm.json")
	b, err := os.ReadFile(wantFile)
	if err != nil {
		t.Fatalf("expected file at %s: %v", wantFile, err)
	}

	var decoded domain.RenderArtifact
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ID != id || decoded.Key != "C#m" || decoded.OriginalKey != "Am" {
		t.Fatalf("unexpected artifact %+v", decoded)
	}
	if len(decoded.Lines) != 1 || decoded.Lines[0] != "Key: C#m" {
		t.Fatalf("unexpected lines %v", decoded.Lines)
	}
}

func TestSaveRender_UsesUniqueFilenameOnCollision(t *testing.T) {
	tmp := t.TempDir()
	n := 0
	store := NewJSONStore(tmp, domain.DefaultConfig(), WithIDs(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))

	id1, err := store.SaveRender(sampleArtifact())
	if err != nil {
		t.Fatalf("SaveRender #1 error: %v", err)
	}
	id2, err := store.SaveRender(sampleArtifact())
	if err != nil {
		t.Fatalf("SaveRender #2 error: %v", err)
	}
	if id1 != "id-1" || id2 != "id-2" {
		t.Fatalf("unexpected ids %q %q", id1, id2)
	}

	base := filepath.Join(tmp, "renders", "20260203T101112Z_house-of-the-rising-sun_csharpm")
	for _, p := range []string{base + ".json", base + "_2.json"} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected file at %s, stat err=%v", p, err)
		}
	}
}

func TestSaveRender_IndexAndList(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.RendersDir = "history"
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := NewJSONStore(tmp, cfg, WithIndex(true), WithNow(func() time.Time { return now }))

	empty, err := store.List()
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list before any render, got %v %v", empty, err)
	}

	a := sampleArtifact()
	a.CreatedAt = time.Time{}
	a.Title = ""
	if _, err := store.SaveRender(a); err != nil {
		t.Fatalf("SaveRender error: %v", err)
	}
	if _, err := store.SaveRender(sampleArtifact()); err != nil {
		t.Fatalf("SaveRender error: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].File != "20260101T000000Z_house_csharpm.json" || !entries[0].CreatedAt.Equal(now) {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}

	got, err := store.Load(entries[1].File)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got.Title != "House of the Rising Sun" || got.Format != domain.FormatPDF {
		t.Fatalf("unexpected loaded artifact %+v", got)
	}

	if _, err := store.Load("missing.json"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Demo API":        "demo-api",
		"  spaced  out ":  "spaced-out",
		"F#m":             "fsharpm",
		"Bb":              "bb",
		"!!!":             "",
		"rock/roll--song": "rock-roll-song",
	}
	for in, want := range cases {
		if got := slugify(in); got != want {
			t.Fatalf("slugify(%q) = %q, want %q", in, got, want)
		}
	}
}
