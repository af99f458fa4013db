package transpose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

func mustChord(t *testing.T, s string) domain.Chord {
	t.Helper()
	c, err := domain.ParseChord(s)
	require.NoError(t, err)
	return c
}

func TestChordIdentity(t *testing.T) {
	got, err := Chord(mustChord(t, "C#m7"), "E", "E")
	require.NoError(t, err)
	assert.Equal(t, "C#m7", got.String())
}

func TestChordSlashBassToFlatKey(t *testing.T) {
	c := domain.Chord{Root: "A", Bass: "C#"}
	got, err := Chord(c, "A", "Bb")
	require.NoError(t, err)
	assert.Equal(t, "Bb", got.Root)
	assert.Equal(t, "D", got.Bass)
	assert.Equal(t, "", got.Symbols)
}

func TestChordSpellingFollowsDestinationKey(t *testing.T) {
	cases := []struct {
		chord, from, to, want string
	}{
		{"C", "C", "D", "D"},
		{"F", "C", "D", "G"},
		{"G7", "C", "Eb", "Bb7"},
		{"Am", "C", "E", "C#m"},
		{"Dm7/C", "F", "Ab", "Fm7/Eb"},
		{"Bb", "F", "G", "C"},
		{"Em", "Em", "F#m", "F#m"},
		{"B7", "Em", "Ebm", "Bb7"},
		{"Csus4", "C", "F#", "F#sus4"},
	}
	for _, c := range cases {
		got, err := Chord(mustChord(t, c.chord), c.from, c.to)
		require.NoError(t, err, c.chord)
		assert.Equal(t, c.want, got.String(), "%s %s->%s", c.chord, c.from, c.to)
	}
}

func TestChordKeyErrors(t *testing.T) {
	_, err := Chord(mustChord(t, "C"), "H", "C")
	assert.True(t, domain.IsKind(err, domain.KindInvalidKey), "got %v", err)

	_, err = Chord(mustChord(t, "C"), "C", "Db")
	assert.True(t, domain.IsKind(err, domain.KindInvalidKey), "got %v", err)

	_, err = Chord(mustChord(t, "C"), "C", "Am")
	assert.True(t, domain.IsKind(err, domain.KindKeyQualityMismatch), "got %v", err)
}

func TestSemitonesRange(t *testing.T) {
	for _, a := range domain.AllKeys() {
		for _, b := range domain.AllKeys() {
			ka, kb := domain.MustParseKey(a), domain.MustParseKey(b)
			d := Semitones(ka, kb)
			assert.GreaterOrEqual(t, d, -6)
			assert.LessOrEqual(t, d, 6)

			upD := DirectionalSemitones(ka, kb, true)
			downD := DirectionalSemitones(ka, kb, false)
			assert.True(t, upD >= 0 && upD < 12, "up %s->%s = %d", a, b, upD)
			assert.True(t, downD > -12 && downD <= 0, "down %s->%s = %d", a, b, downD)
			if upD != 0 {
				assert.Equal(t, 12, upD-downD, "%s->%s", a, b)
			}
		}
	}
}

func TestSemitonesShortestDistance(t *testing.T) {
	c, g := domain.MustParseKey("C"), domain.MustParseKey("G")
	assert.Equal(t, -5, Semitones(c, g))
	assert.Equal(t, 5, Semitones(g, c))
	assert.Equal(t, 7, DirectionalSemitones(c, g, true))
	assert.Equal(t, -5, DirectionalSemitones(c, g, false))

	fs := domain.MustParseKey("F#")
	assert.Equal(t, 6, Semitones(c, fs))
	assert.Equal(t, -6, DirectionalSemitones(c, fs, false))
}
