package yamlsong

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

type mapper struct {
	path    string
	maxFret int
}

func (m mapper) song(ys yamlSong) (domain.SheetMusic, error) {
	if strings.TrimSpace(ys.Title) == "" {
		return domain.SheetMusic{}, m.invalidField("title", errors.New("title is required"))
	}
	key, err := domain.ParseKey(strings.TrimSpace(ys.Key))
	if err != nil {
		return domain.SheetMusic{}, m.invalidField("key", err)
	}

	sheet := domain.SheetMusic{
		Header:   domain.Header{Title: strings.TrimSpace(ys.Title), Artist: strings.TrimSpace(ys.Artist)},
		Key:      key,
		Sections: make([]domain.Section, 0, len(ys.Sections)),
	}
	for i, s := range ys.Sections {
		sec, err := m.section(fmt.Sprintf("sections[%d]", i), s)
		if err != nil {
			return domain.SheetMusic{}, err
		}
		sheet.Sections = append(sheet.Sections, sec)
	}
	return sheet, nil
}

func (m mapper) section(prefix string, ys yamlSection) (domain.Section, error) {
	sec := domain.Section{
		Name: strings.TrimSpace(ys.Name),
		Text: ys.Text,
		Bars: make([]domain.Bar, 0, len(ys.Bars)),
	}
	for i, b := range ys.Bars {
		bar, err := m.bar(fmt.Sprintf("%s.bars[%d]", prefix, i), b)
		if err != nil {
			return domain.Section{}, err
		}
		sec.Bars = append(sec.Bars, bar)
	}
	return sec, nil
}

func (m mapper) bar(prefix string, yb yamlBar) (domain.Bar, error) {
	meter, err := domain.ParseMeter(yb.Meter)
	if err != nil {
		return domain.Bar{}, m.invalidField(prefix+".meter", err)
	}

	chords := make([]domain.TimedChord, 0, len(yb.Chords))
	for i, c := range yb.Chords {
		tc, err := m.chord(c)
		if err != nil {
			return domain.Bar{}, m.invalidField(fmt.Sprintf("%s.chords[%d]", prefix, i), err)
		}
		chords = append(chords, tc)
	}

	notes := make([]domain.Note, 0, len(yb.Notes))
	for i, n := range yb.Notes {
		note, err := m.note(n)
		if err != nil {
			return domain.Bar{}, m.invalidField(fmt.Sprintf("%s.notes[%d]", prefix, i), err)
		}
		notes = append(notes, note)
	}

	bar, err := domain.NewBar(meter, notes, chords)
	if err != nil {
		return domain.Bar{}, m.invalidField(prefix, err)
	}
	return bar, nil
}

func (m mapper) chord(yc yamlChord) (domain.TimedChord, error) {
	timing, text := yc.Timing, yc.Chord
	if yc.short != "" {
		t, c, ok := strings.Cut(yc.short, ":")
		if !ok {
			return domain.TimedChord{}, fmt.Errorf("%q: expected timing:chord", yc.short)
		}
		v, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return domain.TimedChord{}, fmt.Errorf("%q: bad timing: %w", yc.short, err)
		}
		timing, text = v, c
	}

	tm, err := domain.NewTiming(timing)
	if err != nil {
		return domain.TimedChord{}, err
	}
	chord, err := domain.ParseChord(strings.TrimSpace(text))
	if err != nil {
		return domain.TimedChord{}, err
	}
	return domain.TimedChord{Timing: tm, Chord: chord}, nil
}

func (m mapper) note(yn yamlNote) (domain.Note, error) {
	s, f, t := yn.String, yn.Fret, yn.Timing
	if yn.short != "" {
		var err error
		if s, f, t, err = parseShortNote(yn.short); err != nil {
			return domain.Note{}, err
		}
	}

	fret, err := domain.NewFretWithin(domain.GuitarString(s), f, m.maxFret)
	if err != nil {
		return domain.Note{}, err
	}
	tm, err := domain.NewTiming(t)
	if err != nil {
		return domain.Note{}, err
	}
	return domain.Note{Fret: fret, Timing: tm}, nil
}

// parseShortNote reads "string:fret@timing".
func parseShortNote(s string) (str, fret, timing int, err error) {
	pos, at, ok := strings.Cut(strings.TrimSpace(s), "@")
	if !ok {
		return 0, 0, 0, fmt.Errorf("%q: expected string:fret@timing", s)
	}
	sv, fv, ok := strings.Cut(pos, ":")
	if !ok {
		return 0, 0, 0, fmt.Errorf("%q: expected string:fret@timing", s)
	}
	if str, err = strconv.Atoi(strings.TrimSpace(sv)); err != nil {
		return 0, 0, 0, fmt.Errorf("%q: bad string: %w", s, err)
	}
	if fret, err = strconv.Atoi(strings.TrimSpace(fv)); err != nil {
		return 0, 0, 0, fmt.Errorf("%q: bad fret: %w", s, err)
	}
	if timing, err = strconv.Atoi(strings.TrimSpace(at)); err != nil {
		return 0, 0, 0, fmt.Errorf("%q: bad timing: %w", s, err)
	}
	return str, fret, timing, nil
}

// invalidField keeps the kind of a domain error so callers can still tell an unknown
// key from a bad fret, and names the offending field.
func (m mapper) invalidField(field string, err error) error {
	kind := domain.KindInvalidConfig
	var oe *domain.OpError
	if errors.As(err, &oe) {
		kind = oe.Kind
	} else {
		err = fmt.Errorf("%w: %w", err, domain.ErrInvalidConfig)
	}
	return &domain.OpError{
		Op:   "yamlsong.validate",
		Kind: kind,
		Path: m.path,
		Err:  fmt.Errorf("field %s: %w", field, err),
	}
}
