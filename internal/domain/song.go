package domain

// Header carries descriptive song metadata.
type Header struct {
	Title  string
	Artist string
}

// Section is a named part of a song (verse, chorus...) holding free text and bars.
type Section struct {
	Name string
	Text string
	Bars []Bar
}

// SheetMusic is a whole song in one key.
type SheetMusic struct {
	Header   Header
	Key      Key
	Sections []Section
}

// Bars flattens every section's bars in song order.
func (s SheetMusic) Bars() []Bar {
	var out []Bar
	for _, sec := range s.Sections {
		out = append(out, sec.Bars...)
	}
	return out
}

// NumBars counts bars across all sections.
func (s SheetMusic) NumBars() int {
	n := 0
	for _, sec := range s.Sections {
		n += len(sec.Bars)
	}
	return n
}

// SongRef is a lightweight reference to a song file on disk.
type SongRef struct {
	Title string
	Path  string
}
