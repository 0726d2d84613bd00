package workbook

import (
	"github.com/fbngrm/ko-workbook/pkg/config"
	"github.com/fbngrm/ko-workbook/pkg/corpus"
	"github.com/fbngrm/ko-workbook/pkg/layout"
	"golang.org/x/exp/slog"
)

// Document is the output artifact a workbook is assembled into.
type Document interface {
	layout.Canvas
	AddPage()
	Save() error
}

// Builder drives one page per sentence through the layout engine, in theme
// order, then sentence order.
type Builder struct {
	Doc    Document
	Config config.Config
}

// Build renders all themes and persists the document. Page numbers start at
// 1; an odd total gets one blank page appended so duplex printing always
// sees an even page count. Nothing is written until every page is emitted.
func (b *Builder) Build(themes []corpus.Theme) error {
	engine := &layout.Engine{Canvas: b.Doc, Config: b.Config}

	pageNo := 1
	for _, theme := range themes {
		for _, s := range theme.Sentences {
			b.Doc.AddPage()
			engine.RenderPage(theme.Name, pageNo, s)
			slog.Info("rendered page", "page", pageNo, "theme", theme.Name, "hangul", s.Hangul)
			pageNo++
		}
	}

	total := pageNo - 1
	if total%2 == 1 {
		b.Doc.AddPage()
		slog.Info("padded to even page count", "pages", total+1)
	}

	return b.Doc.Save()
}
