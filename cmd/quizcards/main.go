package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/deeplook/pandas-100/internal/config"
	"github.com/deeplook/pandas-100/internal/render"
	"github.com/deeplook/pandas-100/pkg/logger"
	"github.com/deeplook/pandas-100/pkg/utils"
	"github.com/deeplook/pandas-100/pkg/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	output := flag.String("output", "", "output PDF path (default: input with .pdf extension)")
	rows := flag.Int("rows", 0, "card rows per sheet (0 = maximize from card size)")
	cols := flag.Int("cols", 0, "card columns per sheet (0 = maximize from card size)")
	fontDir := flag.String("font-dir", "", "directory containing optional TTF fonts (overrides config)")
	strict := flag.Bool("strict", false, "fail on questions without an answer block")
	noCover := flag.Bool("no-cover", false, "skip the title/intro cover card")
	noFrame := flag.Bool("no-frame", false, "skip the cut frames around cards")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[quizcards] "))
	log.SetVerbose(*verbose)
	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	if flag.NArg() != 1 {
		log.Fatal("usage: quizcards [flags] <input.md>")
	}
	input := flag.Arg(0)

	if !utils.IsMarkdownPath(input) {
		log.Fatal("input must be a .md or .markdown file: %s", input)
	}
	if _, err := os.Stat(input); err != nil {
		log.Fatal("cannot read input file: %v", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("Error loading config: %v", err)
		}
	}

	if *rows > 0 {
		cfg.Grid.Rows = *rows
	}
	if *cols > 0 {
		cfg.Grid.Cols = *cols
	}
	if *fontDir != "" {
		cfg.FontDir = *fontDir
	}
	if *strict {
		cfg.Strict = true
	}
	if *noCover {
		cfg.Cover = false
	}
	if *noFrame {
		cfg.Frame = false
	}

	out := *output
	if out == "" {
		out = utils.DerivePDFPath(input)
	}

	gen := render.NewGenerator(cfg, log)
	if err := gen.Generate(input, out); err != nil {
		log.Fatal("Error generating cards: %v", err)
	}

	log.Info("wrote %s", out)
}
