package query

import (
	"testing"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

func sampleSong(t *testing.T) domain.SheetMusic {
	t.Helper()
	am, err := domain.ParseChord("Am")
	if err != nil {
		t.Fatal(err)
	}
	cg, err := domain.ParseChord("C/G")
	if err != nil {
		t.Fatal(err)
	}
	bar := domain.MustNewBar(domain.FourFour,
		[]domain.Note{{Fret: domain.Fret{String: 2, Number: 1}, Timing: 4}, {Fret: domain.Fret{String: 1, Number: 0}, Timing: 0}},
		[]domain.TimedChord{{Timing: 8, Chord: cg}, {Timing: 0, Chord: am}})
	return domain.SheetMusic{
		Header:   domain.Header{Title: "House", Artist: "Trad"},
		Key:      domain.MustParseKey("Am"),
		Sections: []domain.Section{{Name: "Verse", Bars: []domain.Bar{bar}}},
	}
}

func TestGet(t *testing.T) {
	song := sampleSong(t)
	cases := []struct {
		expr, want string
	}{
		{"$.title", "House"},
		{"$.key", "Am"},
		{"$.sections[0].name", "Verse"},
		{"$.sections[0].bars[0].meter", "4/4"},
		{"$.sections[0].bars[0].chords[1].chord", "C/G"},
		{"$.sections[0].bars[0].chords[1].bass", "G"},
		{"$.sections[0].bars[0].notes[1].fret", "1"},
		{"$.sections[0].bars[0].chords[*].chord", `["Am","C/G"]`},
	}
	for _, c := range cases {
		got, err := Get(song, c.expr)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.expr, err)
		}
		if got != c.want {
			t.Fatalf("%s: expected %q, got %q", c.expr, c.want, got)
		}
	}
}

func TestGetErrors(t *testing.T) {
	song := sampleSong(t)

	if _, err := Get(song, ""); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config for empty expr, got %v", err)
	}
	if _, err := Get(song, "$.sections[0].text"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
	if _, err := Get(song, "$.[[["); err == nil {
		t.Fatalf("expected jsonpath error")
	}
}

func TestApply(t *testing.T) {
	res, err := Apply(sampleSong(t), map[string]string{
		"title":   "$.title",
		"missing": "$.nope",
		"first":   "$.sections[0].bars[0].chords[0].root",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 3 {
		t.Fatalf("expected 3 results, got %d", len(res))
	}
	// sorted by name
	if res[0].Name != "first" || res[1].Name != "missing" || res[2].Name != "title" {
		t.Fatalf("unexpected order: %+v", res)
	}
	if !res[0].Success || res[0].Value != "A" {
		t.Fatalf("unexpected first result: %+v", res[0])
	}
	if res[1].Success {
		t.Fatalf("expected missing to fail: %+v", res[1])
	}
	if !res[2].Success || res[2].Value != "House" {
		t.Fatalf("unexpected title result: %+v", res[2])
	}
}

func TestApplyEmptyRules(t *testing.T) {
	res, err := Apply(sampleSong(t), nil)
	if err != nil || len(res) != 0 {
		t.Fatalf("expected no results, got %v %v", res, err)
	}
}
