package yamlsong

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlSong struct {
	Title    string        `yaml:"title"`
	Artist   string        `yaml:"artist"`
	Key      string        `yaml:"key"`
	Sections []yamlSection `yaml:"sections"`
}

type yamlSection struct {
	Name string    `yaml:"name"`
	Text string    `yaml:"text"`
	Bars []yamlBar `yaml:"bars"`
}

type yamlBar struct {
	Meter  string      `yaml:"meter"`
	Chords []yamlChord `yaml:"chords"`
	Notes  []yamlNote  `yaml:"notes"`
}

// yamlChord accepts "8:C/G" or {timing: 8, chord: C/G}.
type yamlChord struct {
	Timing int    `yaml:"timing"`
	Chord  string `yaml:"chord"`
	short  string
}

func (c *yamlChord) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		c.short = n.Value
		return nil
	case yaml.MappingNode:
		type plain yamlChord
		return n.Decode((*plain)(c))
	default:
		return fmt.Errorf("line %d: chord must be \"timing:chord\" or a mapping", n.Line)
	}
}

// yamlNote accepts "1:3@4" (string:fret@timing) or {string: 1, fret: 3, timing: 4}.
type yamlNote struct {
	String int `yaml:"string"`
	Fret   int `yaml:"fret"`
	Timing int `yaml:"timing"`
	short  string
}

func (nt *yamlNote) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		nt.short = n.Value
		return nil
	case yaml.MappingNode:
		type plain yamlNote
		return n.Decode((*plain)(nt))
	default:
		return fmt.Errorf("line %d: note must be \"string:fret@timing\" or a mapping", n.Line)
	}
}
