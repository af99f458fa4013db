// Package query evaluates JSONPath expressions against a song.
package query

import (
	"encoding/json"
	"fmt"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

type songDoc struct {
	Title    string       `json:"title"`
	Artist   string       `json:"artist"`
	Key      string       `json:"key"`
	Sections []sectionDoc `json:"sections"`
}

type sectionDoc struct {
	Name string   `json:"name"`
	Text string   `json:"text"`
	Bars []barDoc `json:"bars"`
}

type barDoc struct {
	Meter  string     `json:"meter"`
	Chords []chordDoc `json:"chords"`
	Notes  []noteDoc  `json:"notes"`
}

type chordDoc struct {
	Timing int    `json:"timing"`
	Chord  string `json:"chord"`
	Root   string `json:"root"`
	Bass   string `json:"bass,omitempty"`
}

type noteDoc struct {
	Timing int `json:"timing"`
	String int `json:"string"`
	Fret   int `json:"fret"`
}

// Project converts a song into the generic JSON document that expressions run against.
//
//	$.title, $.key, $.sections[i].name, $.sections[i].bars[j].meter,
//	$.sections[i].bars[j].chords[k].{timing,chord,root,bass},
//	$.sections[i].bars[j].notes[k].{timing,string,fret}
func Project(sheet domain.SheetMusic) (any, error) {
	doc := songDoc{
		Title:    sheet.Header.Title,
		Artist:   sheet.Header.Artist,
		Key:      sheet.Key.String(),
		Sections: make([]sectionDoc, 0, len(sheet.Sections)),
	}
	for _, sec := range sheet.Sections {
		sd := sectionDoc{Name: sec.Name, Text: sec.Text, Bars: make([]barDoc, 0, len(sec.Bars))}
		for _, bar := range sec.Bars {
			bd := barDoc{Meter: bar.Meter().String(), Chords: []chordDoc{}, Notes: []noteDoc{}}
			for _, c := range bar.Chords() {
				bd.Chords = append(bd.Chords, chordDoc{
					Timing: int(c.Timing),
					Chord:  c.Chord.String(),
					Root:   c.Chord.Root,
					Bass:   c.Chord.Bass,
				})
			}
			for _, n := range bar.Notes() {
				bd.Notes = append(bd.Notes, noteDoc{
					Timing: int(n.Timing),
					String: int(n.Fret.String),
					Fret:   n.Fret.Number,
				})
			}
			sd.Bars = append(sd.Bars, bd)
		}
		doc.Sections = append(doc.Sections, sd)
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal song: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("unmarshal song: %w", err)
	}
	return out, nil
}
