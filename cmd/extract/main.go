// Command extract runs the extraction pipeline on PDF files from the
// command line and prints the results as JSON. Useful for iterating on
// an extraction configuration without going through the web UI.
// Usage: go run ./cmd/extract [-config path] file.pdf [file.pdf ...]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"cisgen/internal/config"
	"cisgen/internal/extraction"
	"cisgen/internal/pdftext"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "extraction config file (defaults to CONFIG_FOLDER/extraction_config.json)")
	flag.Parse()

	if flag.NArg() == 0 {
		return fmt.Errorf("usage: extract [-config path] file.pdf [file.pdf ...]")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := *configPath
	if path == "" {
		path = cfg.Folders.ExtractionConfigFile()
	}
	extractionCfg, err := extraction.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("loading extraction config: %w", err)
	}

	extractor := pdftext.NewExtractor(cfg.Extraction.EnableOCR)
	recognizer := extraction.NewRecognizer(cfg.Extraction.Model, extractionCfg.EntityRules)
	analyzer := extraction.NewAnalyzer(extractionCfg, recognizer)

	ctx := context.Background()
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "    ")

	failed := 0
	for _, file := range flag.Args() {
		text, err := extractor.ExtractText(ctx, file)
		if err != nil {
			log.Printf("WARN: skipping %s: %v", file, err)
			failed++
			continue
		}
		result := analyzer.Analyze(text)
		if err := enc.Encode(map[string]interface{}{
			"filename":  file,
			"extracted": result,
		}); err != nil {
			return fmt.Errorf("encoding result for %s: %w", file, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, flag.NArg())
	}
	return nil
}
