package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

const fontName = "HangulFont"

// Document is a gofpdf-backed drawing surface. It accepts the bottom-left
// coordinate convention of the layout engine and flips y for gofpdf, whose
// origin is the top-left corner.
type Document struct {
	doc     *gofpdf.Fpdf
	height  float64
	outPath string
}

// New creates a document and registers the Hangul font. The font must be a
// TrueType file; a missing or unreadable font fails here, before anything is
// drawn or written.
func New(fontPath, outPath string, width, height float64) (*Document, error) {
	if _, err := os.Stat(fontPath); err != nil {
		return nil, fmt.Errorf("font file %s: %w", fontPath, err)
	}
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.AddUTF8Font(fontName, "", fontPath)
	if doc.Err() {
		return nil, fmt.Errorf("could not register font %s: %v", fontPath, doc.Error())
	}
	return &Document{doc: doc, height: height, outPath: outPath}, nil
}

func (d *Document) SetFont(size float64) {
	d.doc.SetFont(fontName, "", size)
}

func (d *Document) SetLineWidth(width float64) {
	d.doc.SetLineWidth(width)
}

func (d *Document) Text(x, y float64, text string) {
	d.doc.Text(x, d.height-y, text)
}

func (d *Document) TextRight(x, y float64, text string) {
	d.doc.Text(x-d.doc.GetStringWidth(text), d.height-y, text)
}

func (d *Document) Line(x0, y0, x1, y1 float64) {
	d.doc.Line(x0, d.height-y0, x1, d.height-y1)
}

// AddPage starts a new page; the first call creates the first page.
func (d *Document) AddPage() {
	d.doc.AddPage()
}

// Save writes the finished document to the configured output path, creating
// parent directories as needed.
func (d *Document) Save() error {
	if dir := filepath.Dir(d.outPath); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create output dir: %w", err)
		}
	}
	if err := d.doc.OutputFileAndClose(d.outPath); err != nil {
		return fmt.Errorf("could not write %s: %w", d.outPath, err)
	}
	return nil
}
