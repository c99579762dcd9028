package main

import (
	"fmt"
	"log"
	"os"

	"cisgen/internal/config"
	"cisgen/internal/extraction"
	"cisgen/internal/handler"
	"cisgen/internal/pdftext"
	"cisgen/internal/port"
	"cisgen/internal/router"
	"cisgen/internal/service"
	localstorage "cisgen/internal/storage/local"
	s3storage "cisgen/internal/storage/s3"
	"cisgen/internal/template"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Folders.EnsureAll(); err != nil {
		return fmt.Errorf("failed to create working folders: %w", err)
	}

	// Load the extraction configuration, writing the built-in defaults
	// to disk on first run so operators have a file to edit.
	extractionCfgPath := cfg.Folders.ExtractionConfigFile()
	extractionCfg, err := extraction.LoadConfig(extractionCfgPath)
	if err != nil {
		return fmt.Errorf("failed to load extraction config: %w", err)
	}
	if _, err := os.Stat(extractionCfgPath); os.IsNotExist(err) {
		if err := extractionCfg.Save(extractionCfgPath); err != nil {
			log.Printf("could not write default extraction config: %v", err)
		}
	}

	// Initialize the pipeline
	extractor := pdftext.NewExtractor(cfg.Extraction.EnableOCR)
	recognizer := extraction.NewRecognizer(cfg.Extraction.Model, extractionCfg.EntityRules)
	analyzer := extraction.NewAnalyzer(extractionCfg, recognizer)
	mapper := template.NewMapper(extractionCfg)

	// Initialize the archive backend
	var archive port.ObjectStorage
	switch cfg.Storage.Backend {
	case "s3":
		archive, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	case "local":
		archive, err = localstorage.NewStorage(cfg.Storage.LocalDir)
		if err != nil {
			return fmt.Errorf("failed to initialize local archive: %w", err)
		}
	}

	// Initialize services
	jobSvc := service.NewJobService(cfg, extractor, analyzer, mapper, archive)

	// Initialize handlers
	pageH := handler.NewPageHandler(jobSvc, cfg.Upload)
	jobH := handler.NewJobHandler(jobSvc)
	configH := handler.NewConfigHandler(extractionCfg)
	healthH := handler.NewHealthHandler(cfg.Folders)

	// One extra file's worth of headroom covers the template upload.
	maxBodyBytes := cfg.Upload.MaxFileSize * int64(cfg.Upload.MaxFilesPerReq+1)

	// Setup router
	r := router.Setup(pageH, jobH, configH, healthH, "web/templates/*.html", maxBodyBytes, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Addr())
	if err := r.Run(cfg.Server.Addr()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
