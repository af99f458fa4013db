package transpose

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

func n(s domain.GuitarString, fret int, t domain.Timing) domain.Note {
	return domain.Note{Fret: domain.Fret{String: s, Number: fret}, Timing: t}
}

func tc(t *testing.T, at domain.Timing, chord string) domain.TimedChord {
	return domain.TimedChord{Timing: at, Chord: mustChord(t, chord)}
}

func sampleBar(t *testing.T) domain.Bar {
	return domain.MustNewBar(domain.FourFour,
		[]domain.Note{n(1, 0, 0), n(2, 3, 4), n(3, 2, 8), n(5, 7, 12)},
		[]domain.TimedChord{tc(t, 0, "Am"), tc(t, 8, "F/C")},
	)
}

func TestBarSameKeyIsIdentity(t *testing.T) {
	bar := sampleBar(t)
	for _, up := range []bool{true, false} {
		got, err := Bar(bar, "E", "E", up)
		require.NoError(t, err)
		assert.True(t, bar.Equal(got), "up=%v: %+v", up, got.Notes())
	}
}

func TestBarUpThenDownRestoresOriginal(t *testing.T) {
	bar := sampleBar(t)
	pairs := [][2]string{{"C", "Eb"}, {"A", "Bb"}, {"G", "E"}, {"F", "B"}}
	for _, p := range pairs {
		there, err := Bar(bar, p[0], p[1], true)
		require.NoError(t, err, p)
		back, err := Bar(there, p[1], p[0], false)
		require.NoError(t, err, p)

		gotChords := back.Chords()
		for i, c := range bar.Chords() {
			assert.Equal(t, c.Chord.String(), gotChords[i].Chord.String(), "%v", p)
		}
		assert.Equal(t, bar.Notes(), back.Notes(), "%v", p)
	}
}

func TestBarTransposesChordsAndFrets(t *testing.T) {
	got, err := Bar(sampleBar(t), "A", "Bb", true)
	require.NoError(t, err)

	chords := got.Chords()
	assert.Equal(t, "Bbm", chords[0].Chord.String())
	assert.Equal(t, "Gb/Db", chords[1].Chord.String())
	assert.Equal(t, []domain.Note{n(1, 1, 0), n(2, 4, 4), n(3, 3, 8), n(5, 8, 12)}, got.Notes())
}

func TestBarRelocatesTooHighFretToHigherString(t *testing.T) {
	bar := domain.MustNewBar(domain.FourFour, []domain.Note{n(3, 21, 0)}, nil)
	got, err := Bar(bar, "A", "C", true)
	require.NoError(t, err)
	assert.Equal(t, []domain.Note{n(2, 20, 0)}, got.Notes())
}

func TestBarRelocatesNegativeFretToLowerString(t *testing.T) {
	bar := domain.MustNewBar(domain.FourFour, []domain.Note{n(5, 0, 4)}, nil)
	got, err := Bar(bar, "A", "G", false)
	require.NoError(t, err)
	assert.Equal(t, []domain.Note{n(6, 3, 4)}, got.Notes())
}

func TestBarUnreachableNoteFails(t *testing.T) {
	bar := domain.MustNewBar(domain.FourFour, []domain.Note{n(6, 0, 0)}, nil)
	_, err := Bar(bar, "A", "G", false)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransposition), "got %v", err)
	assert.True(t, errors.Is(err, domain.ErrTransposition))
}

func TestBarRespectsMaxFret(t *testing.T) {
	bar := domain.MustNewBar(domain.FourFour, []domain.Note{n(1, 11, 0)}, nil)

	_, err := Bar(bar, "A", "C", true)
	require.NoError(t, err)

	_, err = Bar(bar, "A", "C", true, WithMaxFret(12))
	assert.True(t, domain.IsKind(err, domain.KindTransposition), "got %v", err)
}

func TestBarCollisionAfterRelocationFails(t *testing.T) {
	bar := domain.MustNewBar(domain.FourFour, []domain.Note{n(5, 0, 0), n(6, 5, 0)}, nil)
	_, err := Bar(bar, "A", "G", false)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransposition), "got %v", err)
	assert.Contains(t, err.Error(), "collide")
}

func TestBarKeepsDuplicateSourceNotes(t *testing.T) {
	bar := domain.MustNewBar(domain.FourFour, []domain.Note{n(1, 3, 0), n(1, 5, 0)}, nil)

	same, err := Bar(bar, "E", "E", true)
	require.NoError(t, err)
	assert.True(t, bar.Equal(same))

	up, err := Bar(bar, "E", "F", true)
	require.NoError(t, err)
	assert.Equal(t, []domain.Note{n(1, 4, 0), n(1, 6, 0)}, up.Notes())
}

func TestBarRelocationOntoSharedSlotStillCollides(t *testing.T) {
	// Two notes already share string 6 at t0; the A-string note relocates onto it.
	bar := domain.MustNewBar(domain.FourFour, []domain.Note{n(5, 0, 0), n(6, 5, 0), n(6, 7, 0)}, nil)
	_, err := Bar(bar, "A", "G", false)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransposition), "got %v", err)
	assert.Contains(t, err.Error(), "collide")
}

func TestBarSameKeyIgnoresMaxFret(t *testing.T) {
	bar := domain.MustNewBar(domain.FourFour, []domain.Note{n(3, 15, 0)}, nil)
	for _, up := range []bool{true, false} {
		got, err := Bar(bar, "E", "E", up, WithMaxFret(12))
		require.NoError(t, err)
		assert.Equal(t, []domain.Note{n(3, 15, 0)}, got.Notes(), "up=%v", up)
	}

	_, err := Bar(bar, "E", "F", true, WithMaxFret(12))
	require.NoError(t, err, "a real move still relocates")
}

func TestBarQualityMismatch(t *testing.T) {
	_, err := Bar(sampleBar(t), "C", "Am", true)
	assert.True(t, domain.IsKind(err, domain.KindKeyQualityMismatch), "got %v", err)

	_, err = BarInKeys(sampleBar(t), domain.MustParseKey("C"), domain.MustParseKey("Am"), true)
	assert.True(t, domain.IsKind(err, domain.KindKeyQualityMismatch), "got %v", err)
}

func TestSongPreservesOrderAndOriginal(t *testing.T) {
	var bars []domain.Bar
	for i := 0; i < 40; i++ {
		bars = append(bars, domain.MustNewBar(domain.FourFour,
			[]domain.Note{n(1, i%20, 0)}, []domain.TimedChord{tc(t, 0, "C")}))
	}
	song := domain.SheetMusic{
		Header:   domain.Header{Title: "Scale"},
		Key:      domain.MustParseKey("C"),
		Sections: []domain.Section{{Name: "A", Bars: bars[:25]}, {Name: "B", Bars: bars[25:]}},
	}

	got, err := Song(context.Background(), song, "D", true)
	require.NoError(t, err)
	assert.Equal(t, "D", got.Key.String())
	assert.Equal(t, "Scale", got.Header.Title)
	require.Equal(t, 40, got.NumBars())

	for i, b := range got.Bars() {
		assert.Equal(t, i%20+2, b.Notes()[0].Fret.Number, "bar %d", i)
		assert.Equal(t, "D", b.Chords()[0].Chord.String())
	}
	assert.Equal(t, "C", song.Key.String())
	assert.Equal(t, 0, song.Bars()[0].Notes()[0].Fret.Number)
}

func TestSongFailsWholeOnOneBadBar(t *testing.T) {
	song := domain.SheetMusic{
		Key: domain.MustParseKey("A"),
		Sections: []domain.Section{{Name: "Verse", Bars: []domain.Bar{
			domain.MustNewBar(domain.FourFour, []domain.Note{n(1, 3, 0)}, nil),
			domain.MustNewBar(domain.FourFour, []domain.Note{n(6, 0, 0)}, nil),
		}}},
	}
	_, err := Song(context.Background(), song, "G", false)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindTransposition))
	assert.Contains(t, err.Error(), `section "Verse" bar 2`)
}
