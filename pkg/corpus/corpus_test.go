package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fbngrm/ko-workbook/pkg/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCorpus(t, `
- name: Cats
  sentences:
    - hangul: "고양이는 있다."
      romanized: "goyang-ineun itda."
      gloss: "There is a cat."
      interlinear: "cat-TOP exist-DECL"
      vocab:
        - word: "고양이"
          definition: "cat"
`)
	themes, err := corpus.Load(path)
	require.NoError(t, err)
	require.Len(t, themes, 1)

	assert.Equal(t, "Cats", themes[0].Name)
	require.Len(t, themes[0].Sentences, 1)
	s := themes[0].Sentences[0]
	assert.Equal(t, "고양이는 있다.", s.Hangul)
	assert.Equal(t, "goyang-ineun itda.", s.Romanized)
	assert.Equal(t, []corpus.Entry{{Word: "고양이", Definition: "cat"}}, s.Vocab)
}

func TestLoadNormalizesToNFC(t *testing.T) {
	// U+1100 U+1161 is the decomposed form of 가
	path := writeCorpus(t, "- name: t\n  sentences:\n    - hangul: \"가\"\n")
	themes, err := corpus.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "가", themes[0].Sentences[0].Hangul)
}

func TestLoadRejectsEmptyHangul(t *testing.T) {
	path := writeCorpus(t, `
- name: Cats
  sentences:
    - gloss: "no hangul here"
`)
	_, err := corpus.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := corpus.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultThemes(t *testing.T) {
	themes := corpus.DefaultThemes()
	require.Len(t, themes, 1)
	assert.Equal(t, "Cats", themes[0].Name)
	assert.Len(t, themes[0].Sentences, 8)
	for _, s := range themes[0].Sentences {
		assert.NotEmpty(t, s.Hangul)
		assert.NotEmpty(t, s.Vocab)
	}
}
