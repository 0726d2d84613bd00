package config

import (
	"fmt"
	"os"

	"github.com/fbngrm/ko-workbook/pkg/cloze"
	"gopkg.in/yaml.v2"
)

// Page geometry in points (72pt = 1 inch).
type Page struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MarginX       float64 `yaml:"margin_x"`
	MarginY       float64 `yaml:"margin_y"`
	LineGap       float64 `yaml:"line_gap"`
	SectionGap    float64 `yaml:"section_gap"`
	ThinLineWidth float64 `yaml:"thin_line_width"` // ink efficiency
}

// Fonts holds the point size per text role.
type Fonts struct {
	Header      float64 `yaml:"header"`
	Practice    float64 `yaml:"practice"`
	Hangul      float64 `yaml:"hangul"`
	Romanized   float64 `yaml:"romanized"`
	Gloss       float64 `yaml:"gloss"`
	Interlinear float64 `yaml:"interlinear"`
	Section     float64 `yaml:"section"`
	Body        float64 `yaml:"body"`
	Cloze       float64 `yaml:"cloze"`
	Vocab       float64 `yaml:"vocab"`
}

type Practice struct {
	Columns int `yaml:"columns"`
}

type Cloze struct {
	PoolSize          int     `yaml:"pool_size"`
	SampleSize        int     `yaml:"sample_size"`
	MaxSpanLen        int     `yaml:"max_span_len"`
	WordLevel         bool    `yaml:"word_level"`
	SpanLevel         bool    `yaml:"span_level"`
	Columns           int     `yaml:"columns"`
	RowGapMult        float64 `yaml:"row_gap_mult"`
	BlankChar         string  `yaml:"blank_char"`
	BlanksPerSyllable int     `yaml:"blanks_per_syllable"`
}

type Vocab struct {
	Columns int `yaml:"columns"`
}

type Config struct {
	Page     Page     `yaml:"page"`
	Fonts    Fonts    `yaml:"fonts"`
	Practice Practice `yaml:"practice"`
	Cloze    Cloze    `yaml:"cloze"`
	Vocab    Vocab    `yaml:"vocab"`
}

// Default returns the settings of the shipped workbook: US Letter, four
// practice columns, two cloze and vocab columns, a pool of 60 with 10
// sampled.
func Default() Config {
	return Config{
		Page: Page{
			Width:         612, // 8.5" x 11"
			Height:        792,
			MarginX:       48,
			MarginY:       54,
			LineGap:       16,
			SectionGap:    18,
			ThinLineWidth: 0.25,
		},
		Fonts: Fonts{
			Header:      10,
			Practice:    12,
			Hangul:      20,
			Romanized:   11,
			Gloss:       10,
			Interlinear: 10,
			Section:     12,
			Body:        11,
			Cloze:       12,
			Vocab:       10,
		},
		Practice: Practice{Columns: 4},
		Cloze: Cloze{
			PoolSize:          60,
			SampleSize:        10,
			MaxSpanLen:        6,
			WordLevel:         true,
			SpanLevel:         true,
			Columns:           2,
			RowGapMult:        1.5,
			BlankChar:         "＿",
			BlanksPerSyllable: 3,
		},
		Vocab: Vocab{Columns: 2},
	}
}

// Load reads overrides from a yaml file on top of Default. Fields absent
// from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not open config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("could not unmarshal config file: %w", err)
	}
	return cfg, nil
}

// PoolOptions translates the cloze section into generator options.
func (c Cloze) PoolOptions() cloze.Options {
	opts := cloze.DefaultOptions()
	opts.IncludeWordLevel = c.WordLevel
	opts.IncludeSpanLevel = c.SpanLevel
	opts.MaxItems = c.PoolSize
	opts.MaxSpanLen = c.MaxSpanLen
	opts.BlanksPerSyllable = c.BlanksPerSyllable
	for _, r := range c.BlankChar {
		opts.BlankChar = r
		break
	}
	return opts
}
