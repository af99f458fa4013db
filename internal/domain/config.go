package domain

// Config represents the tabgen configuration loaded from tabgen.yaml.
type Config struct {
	Layout    LayoutConfig
	Transpose TransposeConfig
	Document  DocumentConfig
	Paths     PathsConfig
}

type LayoutConfig struct {
	PageWidth       int
	VerticalSpacing int
	SectionSpacing  int
}

type TransposeConfig struct {
	MaxFret int
}

// DocumentConfig drives the document writers, not the core layout.
type DocumentConfig struct {
	FontFamily string
	FontSize   float64
	MarginMM   float64
	Heading    string // template with {{title}}, {{artist}}, {{key}}
}

type PathsConfig struct {
	SongsDir   string
	OutputDir  string
	RendersDir string
}

// DefaultConfig provides sane defaults if tabgen.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			PageWidth:       80,
			VerticalSpacing: 1,
			SectionSpacing:  2,
		},
		Transpose: TransposeConfig{MaxFret: MaxFret},
		Document: DocumentConfig{
			FontFamily: "Courier",
			FontSize:   10,
			MarginMM:   15,
			Heading:    "{{title}} - {{artist}}",
		},
		Paths: PathsConfig{
			SongsDir:   "songs",
			OutputDir:  "out",
			RendersDir: "renders",
		},
	}
}

// WorkspaceSpec describes where a workspace should be created.
type WorkspaceSpec struct {
	Root string
}
