package layout

import (
	"fmt"
	"math"

	"github.com/fbngrm/ko-workbook/pkg/cloze"
	"github.com/fbngrm/ko-workbook/pkg/config"
	"github.com/fbngrm/ko-workbook/pkg/corpus"
	"github.com/fbngrm/ko-workbook/pkg/hangul"
)

// Canvas is the drawing surface a page is rendered onto. Coordinates are in
// points with the origin at the bottom-left corner, y growing upward.
type Canvas interface {
	SetFont(size float64)
	SetLineWidth(width float64)
	Text(x, y float64, text string)
	TextRight(x, y float64, text string)
	Line(x0, y0, x1, y1 float64)
}

// Cursor tracks the drawing position while one page is rendered. Y only
// moves downward; a fresh cursor is created per page.
type Cursor struct {
	X, Y float64
	Page int
}

// Engine renders one sentence per page as a fixed block sequence: header,
// sentence, breakdown, practice grid, cloze exercises, vocabulary.
type Engine struct {
	Canvas Canvas
	Config config.Config
}

// RenderPage draws the full block sequence for s onto the current page.
func (e *Engine) RenderPage(themeName string, pageNo int, s corpus.Sentence) {
	page := e.Config.Page
	e.drawHeader(themeName, pageNo)

	cur := Cursor{
		X:    page.MarginX,
		Y:    page.Height - page.MarginY - 20,
		Page: pageNo,
	}
	cur = e.drawSentence(cur, s)
	cur = e.drawBreakdown(cur, s.Hangul)
	cur = e.drawPractice(cur, s.Hangul)
	cur = e.drawCloze(cur, s.Hangul)

	// Anchor vocab near the bottom when the page ran short, so it sits at a
	// consistent height across pages. Never below the absolute floor.
	anchor := page.MarginY + 8*page.LineGap
	if cur.Y > anchor+3*page.LineGap {
		cur.Y = anchor
	}
	cur.Y = math.Max(page.MarginY+4*page.LineGap, cur.Y)
	e.drawVocab(cur, s.Vocab)
}

func (e *Engine) drawHeader(themeName string, pageNo int) {
	page := e.Config.Page
	y := page.Height - page.MarginY + 18
	e.Canvas.SetLineWidth(page.ThinLineWidth)
	e.Canvas.SetFont(e.Config.Fonts.Header)
	e.Canvas.Text(page.MarginX, y, fmt.Sprintf("Theme: %s", themeName))
	e.Canvas.TextRight(page.Width-page.MarginX, y, fmt.Sprintf("Page %d", pageNo))
}

func (e *Engine) drawSentence(cur Cursor, s corpus.Sentence) Cursor {
	page := e.Config.Page
	fonts := e.Config.Fonts

	e.Canvas.SetFont(fonts.Hangul)
	e.Canvas.Text(cur.X, cur.Y, s.Hangul)
	cur.Y -= page.LineGap * 1.35

	if s.Romanized != "" {
		e.Canvas.SetFont(fonts.Romanized)
		e.Canvas.Text(cur.X, cur.Y, s.Romanized)
		cur.Y -= page.LineGap * 0.95
	}

	// English gloss and interlinear gloss side by side, one half each.
	colWidth := e.usableWidth() / 2
	e.Canvas.SetFont(fonts.Gloss)
	e.Canvas.Text(cur.X, cur.Y, fmt.Sprintf("Gloss: %s", s.Gloss))
	e.Canvas.SetFont(fonts.Interlinear)
	e.Canvas.Text(cur.X+colWidth, cur.Y, fmt.Sprintf("IG: %s", s.Interlinear))
	cur.Y -= page.LineGap

	cur.Y -= page.SectionGap
	return cur
}

func (e *Engine) drawBreakdown(cur Cursor, text string) Cursor {
	page := e.Config.Page

	e.Canvas.SetFont(e.Config.Fonts.Section)
	e.Canvas.Text(cur.X, cur.Y, "Breakdown (syllable = parts)")
	cur.Y -= page.LineGap * 0.95

	e.Canvas.SetFont(e.Config.Fonts.Body)
	guard := page.MarginY + 12*page.LineGap
	for _, syl := range hangul.UniqueSyllables(text) {
		e.Canvas.Text(cur.X, cur.Y, hangul.BreakdownLine(syl))
		cur.Y -= page.LineGap * 0.90
		if cur.Y < guard {
			break
		}
	}

	cur.Y -= page.SectionGap * 0.8
	return cur
}

func (e *Engine) drawPractice(cur Cursor, text string) Cursor {
	page := e.Config.Page

	e.Canvas.SetFont(e.Config.Fonts.Section)
	e.Canvas.Text(cur.X, cur.Y, "Write each syllable (repeat on the line)")
	cur.Y -= page.LineGap

	cols := e.Config.Practice.Columns
	if cols < 1 {
		cols = 1
	}
	colWidth := e.usableWidth() / float64(cols)
	rowHeight := page.LineGap * 1.2
	floor := page.MarginY + 9*page.LineGap

	e.Canvas.SetLineWidth(page.ThinLineWidth)
	e.Canvas.SetFont(e.Config.Fonts.Practice)

	rowsUsed := 0
	for i, syl := range hangul.UniqueSyllables(text) {
		row, col := practiceFill.Cell(i, cols, 0)
		if row+1 > rowsUsed {
			rowsUsed = row + 1
		}

		cx := cur.X + float64(col)*colWidth
		cy := cur.Y - float64(row)*rowHeight
		if cy < floor {
			break
		}

		e.Canvas.Text(cx, cy, string(syl)+":")
		lineX0 := cx + 22
		lineX1 := cx + colWidth - 6
		if lineX1 > lineX0+20 {
			e.Canvas.Line(lineX0, cy-4, lineX1, cy-4)
		}
	}

	cur.Y -= float64(rowsUsed) * rowHeight
	cur.Y -= page.SectionGap
	return cur
}

func (e *Engine) drawCloze(cur Cursor, text string) Cursor {
	page := e.Config.Page
	cfg := e.Config.Cloze

	e.Canvas.SetFont(e.Config.Fonts.Section)
	e.Canvas.Text(cur.X, cur.Y, fmt.Sprintf("Fill in the blank (%d selected)", cfg.SampleSize))
	cur.Y -= page.LineGap

	pool := cloze.GeneratePool(text, cfg.PoolOptions())
	items := cloze.Sample(pool, cfg.SampleSize, text)

	cols := cfg.Columns
	if cols < 1 {
		cols = 1
	}
	colWidth := e.usableWidth() / float64(cols)
	rowHeight := page.LineGap * cfg.RowGapMult
	rows := (len(items) + cols - 1) / cols
	floor := page.MarginY + 8*page.LineGap

	e.Canvas.SetFont(e.Config.Fonts.Cloze)
	for i, item := range items {
		row, col := clozeFill.Cell(i, cols, rows)
		cx := cur.X + float64(col)*colWidth
		cy := cur.Y - float64(row)*rowHeight
		if cy < floor {
			break
		}
		e.Canvas.Text(cx, cy, item)
	}

	cur.Y -= float64(rows) * rowHeight
	cur.Y -= page.SectionGap * 0.8
	return cur
}

func (e *Engine) drawVocab(cur Cursor, vocab []corpus.Entry) Cursor {
	page := e.Config.Page

	e.Canvas.SetFont(e.Config.Fonts.Section)
	e.Canvas.Text(cur.X, cur.Y, "Vocab")
	cur.Y -= page.LineGap * 0.9

	e.Canvas.SetFont(e.Config.Fonts.Vocab)
	if len(vocab) == 0 {
		e.Canvas.Text(cur.X, cur.Y, "(none)")
		cur.Y -= page.SectionGap
		return cur
	}

	cols := e.Config.Vocab.Columns
	if cols < 1 {
		cols = 1
	}
	colWidth := e.usableWidth() / float64(cols)
	rowHeight := page.LineGap * 0.9
	rows := (len(vocab) + cols - 1) / cols
	floor := page.MarginY + page.LineGap

	for i, entry := range vocab {
		row, col := vocabFill.Cell(i, cols, rows)
		cx := cur.X + float64(col)*colWidth
		cy := cur.Y - float64(row)*rowHeight
		if cy < floor {
			break
		}
		e.Canvas.Text(cx, cy, fmt.Sprintf("%s: %s", entry.Word, entry.Definition))
	}

	cur.Y -= float64(rows) * rowHeight
	cur.Y -= page.SectionGap * 0.5
	return cur
}

func (e *Engine) usableWidth() float64 {
	return e.Config.Page.Width - 2*e.Config.Page.MarginX
}
