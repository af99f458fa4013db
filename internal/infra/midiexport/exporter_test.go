package midiexport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

func fret(s domain.GuitarString, n int) domain.Fret { return domain.Fret{String: s, Number: n} }

func TestPitch(t *testing.T) {
	cases := []struct {
		f    domain.Fret
		want uint8
	}{
		{fret(1, 0), 64},
		{fret(2, 0), 59},
		{fret(6, 0), 40},
		{fret(5, 3), 48},
		{fret(1, 22), 86},
	}
	for _, c := range cases {
		got, err := Pitch(c.f)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%+v", c.f)
	}

	_, err := Pitch(fret(7, 0))
	assert.Error(t, err)
}

type readNote struct {
	tick int64
	key  uint8
	on   bool
}

func TestExportMIDI_RoundTrip(t *testing.T) {
	am, err := domain.ParseChord("Am")
	require.NoError(t, err)
	song := domain.SheetMusic{
		Header: domain.Header{Title: "Test"},
		Key:    domain.MustParseKey("Am"),
		Sections: []domain.Section{{Bars: []domain.Bar{
			domain.MustNewBar(domain.FourFour,
				[]domain.Note{{Fret: fret(5, 0), Timing: 0}, {Fret: fret(3, 2), Timing: 4}},
				[]domain.TimedChord{{Timing: 0, Chord: am}}),
			domain.MustNewBar(domain.SixEight, []domain.Note{{Fret: fret(1, 0), Timing: 6}}, nil),
		}}},
	}

	var buf bytes.Buffer
	require.NoError(t, New().ExportMIDI(song, 120, &buf))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, s.Tracks, 1)
	assert.Equal(t, ticksPerQuarter, s.TimeFormat)

	var (
		notes  []readNote
		meters [][2]uint8
		tempo  float64
		abs    int64
	)
	for _, ev := range s.Tracks[0] {
		abs += int64(ev.Delta)
		var ch, key, vel, num, den uint8
		var bpm float64
		switch {
		case ev.Message.GetNoteOn(&ch, &key, &vel):
			notes = append(notes, readNote{abs, key, true})
		case ev.Message.GetNoteOff(&ch, &key, &vel):
			notes = append(notes, readNote{abs, key, false})
		case ev.Message.GetMetaMeter(&num, &den):
			meters = append(meters, [2]uint8{num, den})
		case ev.Message.GetMetaTempo(&bpm):
			tempo = bpm
		}
	}

	assert.InDelta(t, 120, tempo, 0.01)
	assert.Equal(t, [][2]uint8{{4, 4}, {6, 8}}, meters)

	// A2 at 0, G3 at one beat, E4 half way through the 6/8 bar.
	want := []readNote{
		{0, 45, true},
		{120, 45, false},
		{480, 57, true},
		{600, 57, false},
		{1920 + 720, 64, true},
		{1920 + 840, 64, false},
	}
	assert.Equal(t, want, notes)
}

func TestExportMIDI_RejectsBadTempo(t *testing.T) {
	var buf bytes.Buffer
	err := New().ExportMIDI(domain.SheetMusic{}, 0, &buf)
	assert.True(t, domain.IsKind(err, domain.KindExecution), "got %v", err)
}
