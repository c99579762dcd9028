package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"cisgen/internal/config"
	"cisgen/internal/domain"
	"cisgen/internal/extraction"
	"cisgen/internal/port"
	"cisgen/internal/render"
	"cisgen/internal/template"
)

// summaryFilename is the per-job summary written next to the outputs.
const summaryFilename = "extraction_summary.json"

// ProcessInput is the DTO for a batch processing request.
type ProcessInput struct {
	Documents []*multipart.FileHeader
	Template  *multipart.FileHeader
}

// JobService runs the document processing pipeline and serves results.
type JobService interface {
	Process(ctx context.Context, input ProcessInput) (*domain.JobSummary, error)
	GetSummary(ctx context.Context, jobID uuid.UUID) (*domain.JobSummary, error)
	ResultFilePath(jobID uuid.UUID, filename string) (string, error)
}

// TextExtractor pulls the text out of a saved document file.
// *pdftext.Extractor is the production implementation.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (string, error)
}

type jobService struct {
	cfg       *config.Config
	extractor TextExtractor
	analyzer  *extraction.Analyzer
	mapper    *template.Mapper
	archive   port.ObjectStorage // nil when archiving is disabled
}

// NewJobService creates a JobService. archive may be nil.
func NewJobService(
	cfg *config.Config,
	extractor TextExtractor,
	analyzer *extraction.Analyzer,
	mapper *template.Mapper,
	archive port.ObjectStorage,
) JobService {
	return &jobService{
		cfg:       cfg,
		extractor: extractor,
		analyzer:  analyzer,
		mapper:    mapper,
		archive:   archive,
	}
}

func (s *jobService) Process(ctx context.Context, input ProcessInput) (*domain.JobSummary, error) {
	if input.Template == nil {
		return nil, domain.ErrMissingTemplate
	}
	if len(input.Documents) == 0 {
		return nil, domain.ErrMissingDocuments
	}
	if s.cfg.Upload.MaxFilesPerReq > 0 && len(input.Documents) > s.cfg.Upload.MaxFilesPerReq {
		return nil, domain.ErrTooManyFiles
	}

	// The template is validated up front: a bad template rejects the
	// whole request before any document work starts.
	tplPath, err := s.saveToTemp(input.Template)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTemplate, err)
	}
	defer func() { _ = os.Remove(tplPath) }()

	tpl, err := template.Load(tplPath)
	if err != nil {
		return nil, err
	}

	jobID := uuid.New()
	resultDir := filepath.Join(s.cfg.Folders.Result, jobID.String())
	if err := os.MkdirAll(resultDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating result dir: %w", err)
	}

	outputFormat := render.FormatFor(tpl)
	summary := &domain.JobSummary{
		JobID:     jobID,
		Timestamp: time.Now(),
		Template:  input.Template.Filename,
	}

	for _, header := range input.Documents {
		if header.Filename == "" {
			continue
		}
		result := s.processDocument(ctx, header, tpl, outputFormat, resultDir)
		summary.Documents = append(summary.Documents, header.Filename)
		summary.Results = append(summary.Results, result)
	}

	if err := s.writeSummary(ctx, resultDir, summary); err != nil {
		return nil, err
	}
	s.archiveResults(ctx, jobID, resultDir, summary)

	log.Printf("jobService.Process: job %s processed %d documents (template %s)",
		jobID, len(summary.Documents), input.Template.Filename)
	return summary, nil
}

// processDocument runs one document through the pipeline. Failures are
// recorded on the returned result; the batch always continues.
func (s *jobService) processDocument(
	ctx context.Context,
	header *multipart.FileHeader,
	tpl *template.Descriptor,
	outputFormat domain.OutputFormat,
	resultDir string,
) domain.DocumentResult {
	result := domain.DocumentResult{Filename: header.Filename}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	if _, ok := domain.AllowedDocumentExtensions[ext]; !ok {
		result.Error = fmt.Sprintf("document file must be PDF: %s", header.Filename)
		return result
	}
	if s.cfg.Upload.MaxFileSize > 0 && header.Size > s.cfg.Upload.MaxFileSize {
		result.Error = fmt.Sprintf("document exceeds maximum size: %s", header.Filename)
		return result
	}

	docPath, err := s.saveToTemp(header)
	if err != nil {
		result.Error = fmt.Sprintf("saving document: %v", err)
		return result
	}
	defer func() { _ = os.Remove(docPath) }()

	text, err := s.extractor.ExtractText(ctx, docPath)
	if err != nil {
		log.Printf("jobService.processDocument: %s: %v", header.Filename, err)
		result.Error = fmt.Sprintf("error processing %s: %v", header.Filename, err)
		return result
	}

	extracted := s.analyzer.Analyze(text)
	values := s.mapper.Map(extracted, tpl)

	outputFile := render.OutputName(header.Filename, outputFormat)
	outputPath := filepath.Join(resultDir, outputFile)
	if err := render.Output(tpl, extracted, values, outputPath); err != nil {
		log.Printf("jobService.processDocument: rendering %s: %v", header.Filename, err)
		result.Error = fmt.Sprintf("error generating output for %s: %v", header.Filename, err)
		return result
	}

	result.OutputFile = outputFile
	result.ExtractedData = extracted
	return result
}

func (s *jobService) GetSummary(ctx context.Context, jobID uuid.UUID) (*domain.JobSummary, error) {
	path := filepath.Join(s.cfg.Folders.Result, jobID.String(), summaryFilename)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, domain.ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading job summary: %w", err)
	}
	summary := &domain.JobSummary{}
	if err := json.Unmarshal(data, summary); err != nil {
		return nil, fmt.Errorf("parsing job summary: %w", err)
	}
	return summary, nil
}

func (s *jobService) ResultFilePath(jobID uuid.UUID, filename string) (string, error) {
	// Base strips any path components a crafted filename might carry.
	path := filepath.Join(s.cfg.Folders.Result, jobID.String(), filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return "", domain.ErrResultFileNotFound
	}
	return path, nil
}

// saveToTemp writes an uploaded file into the temp folder under a
// unique name and returns its path.
func (s *jobService) saveToTemp(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = src.Close() }()

	path := filepath.Join(s.cfg.Folders.Temp, uuid.New().String()+"_"+filepath.Base(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}

func (s *jobService) writeSummary(ctx context.Context, resultDir string, summary *domain.JobSummary) error {
	data, err := json.MarshalIndent(summary, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding job summary: %w", err)
	}
	path := filepath.Join(resultDir, summaryFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailed, err)
	}
	return nil
}

// archiveResults mirrors the job's result files into object storage
// when an archive backend is configured. Archive failures are logged,
// never fatal: the local results remain authoritative.
func (s *jobService) archiveResults(ctx context.Context, jobID uuid.UUID, resultDir string, summary *domain.JobSummary) {
	if s.archive == nil {
		return
	}
	files := []string{summaryFilename}
	for _, r := range summary.Results {
		if r.OutputFile != "" {
			files = append(files, r.OutputFile)
		}
	}
	for _, name := range files {
		data, err := os.ReadFile(filepath.Join(resultDir, name))
		if err != nil {
			log.Printf("jobService.archiveResults: reading %s: %v", name, err)
			continue
		}
		_, err = s.archive.Upload(ctx, port.UploadInput{
			Bucket:      s.cfg.S3.Bucket,
			Key:         "jobs/" + jobID.String() + "/" + name,
			Body:        bytes.NewReader(data),
			ContentType: "application/octet-stream",
			Size:        int64(len(data)),
		})
		if err != nil {
			log.Printf("jobService.archiveResults: uploading %s: %v", name, err)
		}
	}
}
