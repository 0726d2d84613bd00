package corpus

import (
	"fmt"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v2"
)

// Entry is one vocabulary item shown at the bottom of a page.
type Entry struct {
	Word       string `yaml:"word"`
	Definition string `yaml:"definition"`
}

// Sentence is a single workbook item. All fields are provided by the corpus;
// nothing is derived at load time.
type Sentence struct {
	Hangul      string  `yaml:"hangul"`
	Romanized   string  `yaml:"romanized"`
	Gloss       string  `yaml:"gloss"`
	Interlinear string  `yaml:"interlinear"`
	Vocab       []Entry `yaml:"vocab"`
}

// Theme is a named, ordered collection of sentences. One page is rendered
// per sentence, in this order.
type Theme struct {
	Name      string     `yaml:"name"`
	Sentences []Sentence `yaml:"sentences"`
}

// Load reads themes from a yaml file. Hangul text is normalized to NFC so
// decomposed input still classifies as precomposed syllables downstream.
func Load(path string) ([]Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open corpus file: %w", err)
	}
	var themes []Theme
	if err := yaml.Unmarshal(b, &themes); err != nil {
		return nil, fmt.Errorf("could not unmarshal corpus file: %w", err)
	}
	for t, theme := range themes {
		for s, sentence := range theme.Sentences {
			if sentence.Hangul == "" {
				return nil, fmt.Errorf("empty hangul text in theme %q, sentence %d", theme.Name, s+1)
			}
			themes[t].Sentences[s].Hangul = norm.NFC.String(sentence.Hangul)
		}
	}
	return themes, nil
}
