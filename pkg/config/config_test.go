package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fbngrm/ko-workbook/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	// US Letter in points
	assert.Equal(t, 612.0, cfg.Page.Width)
	assert.Equal(t, 792.0, cfg.Page.Height)
	assert.Equal(t, 4, cfg.Practice.Columns)
	assert.Equal(t, 2, cfg.Cloze.Columns)
	assert.Equal(t, 2, cfg.Vocab.Columns)
	assert.Equal(t, 60, cfg.Cloze.PoolSize)
	assert.Equal(t, 10, cfg.Cloze.SampleSize)
	assert.Equal(t, "＿", cfg.Cloze.BlankChar)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
page:
  margin_x: 30
cloze:
  sample_size: 6
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30.0, cfg.Page.MarginX)
	assert.Equal(t, 6, cfg.Cloze.SampleSize)
	// untouched fields keep their defaults
	assert.Equal(t, 792.0, cfg.Page.Height)
	assert.Equal(t, 4, cfg.Practice.Columns)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPoolOptions(t *testing.T) {
	cfg := config.Default()
	opts := cfg.Cloze.PoolOptions()

	assert.True(t, opts.IncludeWordLevel)
	assert.True(t, opts.IncludeSpanLevel)
	assert.Equal(t, 60, opts.MaxItems)
	assert.Equal(t, 6, opts.MaxSpanLen)
	assert.Equal(t, '＿', opts.BlankChar)
	assert.Equal(t, 3, opts.BlanksPerSyllable)
}
