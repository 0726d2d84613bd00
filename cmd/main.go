package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fbngrm/ko-workbook/pkg/config"
	"github.com/fbngrm/ko-workbook/pkg/corpus"
	"github.com/fbngrm/ko-workbook/pkg/pdf"
	"github.com/fbngrm/ko-workbook/pkg/workbook"
)

var fontPath string
var corpusPath string
var configPath string
var outPath string

func main() {
	flag.StringVar(&fontPath, "font", "", "path to a Hangul-capable TrueType font (.ttf)")
	flag.StringVar(&corpusPath, "corpus", "", "yaml corpus file; the built-in themes are used when empty")
	flag.StringVar(&configPath, "config", "", "yaml config file overriding the defaults")
	flag.StringVar(&outPath, "o", "out/hangul_workbook.pdf", "output pdf path")
	flag.Parse()

	if fontPath == "" {
		fmt.Println("missing -font: point it to a TrueType .ttf with Hangul glyphs, e.g. malgun.ttf")
		os.Exit(1)
	}

	cfg := config.Default()
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			fmt.Printf("could not load config: %v\n", err)
			os.Exit(1)
		}
	}

	themes := corpus.DefaultThemes()
	if corpusPath != "" {
		themes, err = corpus.Load(corpusPath)
		if err != nil {
			fmt.Printf("could not load corpus: %v\n", err)
			os.Exit(1)
		}
	}

	// Font registration fails here, before any page is drawn or any file is
	// written.
	doc, err := pdf.New(fontPath, outPath, cfg.Page.Width, cfg.Page.Height)
	if err != nil {
		fmt.Printf("could not create document: %v\n", err)
		os.Exit(1)
	}

	b := workbook.Builder{Doc: doc, Config: cfg}
	if err := b.Build(themes); err != nil {
		fmt.Printf("could not build workbook: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", outPath)
}
