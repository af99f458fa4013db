// Package midiexport writes songs as Standard MIDI Files so a tab can be auditioned
// in any sequencer.
package midiexport

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
	"github.com/cdclaxton/guitar-tab-generator/internal/ports"
)

// openStrings holds the MIDI key of each open string in standard tuning, string 1 first.
var openStrings = [domain.NumStrings]uint8{64, 59, 55, 50, 45, 40}

const (
	ticksPerQuarter = smf.MetricTicks(480)
	channel         = 0
	velocity        = 90
)

// Exporter renders one track: song name, tempo, a meter event whenever the time
// signature changes, a marker per chord and one sixteenth-long note per tab note.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

var _ ports.MIDIExporter = (*Exporter)(nil)

// Pitch is the MIDI key sounded by a fret.
func Pitch(f domain.Fret) (uint8, error) {
	if !f.String.Valid() {
		return 0, fmt.Errorf("string %d out of range", f.String)
	}
	k := int(openStrings[f.String-1]) + f.Number
	if f.Number < 0 || k > 127 {
		return 0, fmt.Errorf("fret %d on string %d is not a MIDI key", f.Number, f.String)
	}
	return uint8(k), nil
}

type event struct {
	tick  uint32
	order int // meta < note off < note on at the same tick
	msg   []byte
}

func (e *Exporter) ExportMIDI(song domain.SheetMusic, bpm float64, w io.Writer) error {
	if bpm <= 0 {
		return exportErr(fmt.Errorf("tempo must be positive, got %v", bpm))
	}
	sixteenth := ticksPerQuarter.Ticks16th()

	events := []event{
		{tick: 0, msg: smf.MetaTrackSequenceName(song.Header.Title)},
		{tick: 0, msg: smf.MetaTempo(bpm)},
	}

	var (
		start uint32
		meter domain.Meter = -1
	)
	for bi, bar := range song.Bars() {
		if bar.Meter() != meter {
			meter = bar.Meter()
			events = append(events, event{tick: start, msg: smf.MetaMeter(meter.Numerator(), meter.Denominator())})
		}
		for _, c := range bar.Chords() {
			events = append(events, event{tick: start + uint32(c.Timing)*sixteenth, msg: smf.MetaMarker(c.Chord.String())})
		}
		for _, n := range bar.Notes() {
			key, err := Pitch(n.Fret)
			if err != nil {
				return exportErr(fmt.Errorf("bar %d: %w", bi+1, err))
			}
			on := start + uint32(n.Timing)*sixteenth
			events = append(events,
				event{tick: on, order: 2, msg: midi.NoteOn(channel, key, velocity)},
				event{tick: on + sixteenth, order: 1, msg: midi.NoteOff(channel, key)},
			)
		}
		start += uint32(bar.Meter().Sixteenths()) * sixteenth
	}

	slices.SortStableFunc(events, func(a, b event) int {
		if c := cmp.Compare(a.tick, b.tick); c != 0 {
			return c
		}
		return cmp.Compare(a.order, b.order)
	})

	var tr smf.Track
	var last uint32
	for _, ev := range events {
		tr.Add(ev.tick-last, ev.msg)
		last = ev.tick
	}
	end := start
	if end < last {
		end = last
	}
	tr.Close(end - last)

	s := smf.New()
	s.TimeFormat = ticksPerQuarter
	if err := s.Add(tr); err != nil {
		return exportErr(err)
	}
	if _, err := s.WriteTo(w); err != nil {
		return exportErr(err)
	}
	return nil
}

func exportErr(err error) error {
	return &domain.OpError{
		Op:   "midiexport.write",
		Kind: domain.KindExecution,
		Err:  err,
	}
}
