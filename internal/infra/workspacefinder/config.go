package workspacefinder

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cdclaxton/guitar-tab-generator/internal/domain"
)

// ConfigFile marks a workspace root.
const ConfigFile = "tabgen.yaml"

// Environment variables that override tabgen.yaml. A .env file at the workspace root
// is read first; variables already set in the process win over it.
const (
	EnvPageWidth = "TABGEN_PAGE_WIDTH"
	EnvMaxFret   = "TABGEN_MAX_FRET"
	EnvFontSize  = "TABGEN_FONT_SIZE"
)

// LoadConfig loads tabgen.yaml from the workspace root, applies defaults and then
// environment overrides.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	t := y.Tabgen
	setInt(&cfg.Layout.PageWidth, t.Layout.PageWidth)
	setInt(&cfg.Layout.VerticalSpacing, t.Layout.VerticalSpacing)
	setInt(&cfg.Layout.SectionSpacing, t.Layout.SectionSpacing)
	setInt(&cfg.Transpose.MaxFret, t.Transpose.MaxFret)
	if t.Document.FontFamily != "" {
		cfg.Document.FontFamily = t.Document.FontFamily
	}
	if t.Document.FontSize != nil {
		cfg.Document.FontSize = *t.Document.FontSize
	}
	if t.Document.MarginMM != nil {
		cfg.Document.MarginMM = *t.Document.MarginMM
	}
	if t.Document.Heading != "" {
		cfg.Document.Heading = t.Document.Heading
	}
	if t.Paths.SongsDir != "" {
		cfg.Paths.SongsDir = t.Paths.SongsDir
	}
	if t.Paths.OutputDir != "" {
		cfg.Paths.OutputDir = t.Paths.OutputDir
	}
	if t.Paths.RendersDir != "" {
		cfg.Paths.RendersDir = t.Paths.RendersDir
	}

	if err := applyEnv(root, &cfg); err != nil {
		return cfg, err
	}
	if err := validate(path, cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func applyEnv(root string, cfg *domain.Config) error {
	envPath := filepath.Join(root, ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &domain.OpError{
			Op:   "workspacefinder.loadenv",
			Kind: domain.KindInvalidConfig,
			Path: envPath,
			Err:  err,
		}
	}

	if v, ok, err := envInt(EnvPageWidth); err != nil {
		return err
	} else if ok {
		cfg.Layout.PageWidth = v
	}
	if v, ok, err := envInt(EnvMaxFret); err != nil {
		return err
	} else if ok {
		cfg.Transpose.MaxFret = v
	}
	if s := os.Getenv(EnvFontSize); s != "" {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return envErr(EnvFontSize, s, err)
		}
		cfg.Document.FontSize = f
	}
	return nil
}

func envInt(key string) (int, bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, envErr(key, s, err)
	}
	return v, true, nil
}

func envErr(key, value string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadenv",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s=%q: %w", key, value, err),
	}
}

func validate(path string, cfg domain.Config) error {
	var msg string
	switch {
	case cfg.Layout.PageWidth <= 0:
		msg = "layout.page_width must be positive"
	case cfg.Layout.VerticalSpacing < 0 || cfg.Layout.SectionSpacing < 0:
		msg = "layout spacing cannot be negative"
	case cfg.Transpose.MaxFret <= 0:
		msg = "transpose.max_fret must be positive"
	case cfg.Transpose.MaxFret > domain.FretCeiling:
		msg = fmt.Sprintf("transpose.max_fret cannot exceed %d", domain.FretCeiling)
	case cfg.Document.FontSize <= 0:
		msg = "document.font_size must be positive"
	default:
		return nil
	}
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Tabgen struct {
		Layout struct {
			PageWidth       *int `yaml:"page_width"`
			VerticalSpacing *int `yaml:"vertical_spacing"`
			SectionSpacing  *int `yaml:"section_spacing"`
		} `yaml:"layout"`

		Transpose struct {
			MaxFret *int `yaml:"max_fret"`
		} `yaml:"transpose"`

		Document struct {
			FontFamily string   `yaml:"font_family"`
			FontSize   *float64 `yaml:"font_size"`
			MarginMM   *float64 `yaml:"margin_mm"`
			Heading    string   `yaml:"heading"`
		} `yaml:"document"`

		Paths struct {
			SongsDir   string `yaml:"songs_dir"`
			OutputDir  string `yaml:"output_dir"`
			RendersDir string `yaml:"renders_dir"`
		} `yaml:"paths"`
	} `yaml:"tabgen"`
}
