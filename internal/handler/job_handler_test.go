package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cisgen/internal/domain"
	"cisgen/internal/middleware"
	"cisgen/internal/service"
)

type stubJobService struct {
	summary    *domain.JobSummary
	processErr error
	getErr     error
	filePath   string
	fileErr    error

	gotInput service.ProcessInput
}

func (s *stubJobService) Process(ctx context.Context, input service.ProcessInput) (*domain.JobSummary, error) {
	s.gotInput = input
	if s.processErr != nil {
		return nil, s.processErr
	}
	return s.summary, nil
}

func (s *stubJobService) GetSummary(ctx context.Context, jobID uuid.UUID) (*domain.JobSummary, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.summary, nil
}

func (s *stubJobService) ResultFilePath(jobID uuid.UUID, filename string) (string, error) {
	if s.fileErr != nil {
		return "", s.fileErr
	}
	return s.filePath, nil
}

func newJobRouter(svc service.JobService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewJobHandler(svc)
	r := gin.New()
	r.POST("/api/v1/jobs", h.Create)
	r.GET("/api/v1/jobs/:id", h.Get)
	r.GET("/api/v1/jobs/:id/export", h.ExportCSV)
	r.GET("/download/:job_id/:filename", h.Download)
	return r
}

func multipartRequest(t *testing.T, url string, docs, templates map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, content := range docs {
		fw, err := w.CreateFormFile("documents", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	for name, content := range templates {
		fw, err := w.CreateFormFile("template", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func sampleSummary() *domain.JobSummary {
	return &domain.JobSummary{
		JobID:     uuid.New(),
		Template:  "cis.json",
		Documents: []string{"agreement.pdf"},
		Results: []domain.DocumentResult{
			{
				Filename:   "agreement.pdf",
				OutputFile: "processed_agreement.json",
				ExtractedData: &domain.ExtractionResult{
					DocumentType: "purchase_agreement",
					Parties:      domain.Parties{Buyer: "John Smith"},
				},
			},
		},
	}
}

func TestJobCreate(t *testing.T) {
	svc := &stubJobService{summary: sampleSummary()}
	r := newJobRouter(svc)

	req := multipartRequest(t, "/api/v1/jobs",
		map[string]string{"agreement.pdf": "pdf-bytes"},
		map[string]string{"cis.json": "{}"},
	)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)

	require.Len(t, svc.gotInput.Documents, 1)
	assert.Equal(t, "agreement.pdf", svc.gotInput.Documents[0].Filename)
	require.NotNil(t, svc.gotInput.Template)
	assert.Equal(t, "cis.json", svc.gotInput.Template.Filename)
}

func TestJobCreate_NotMultipart(t *testing.T) {
	r := newJobRouter(&stubJobService{})

	req := httptest.NewRequest("POST", "/api/v1/jobs", strings.NewReader(`{"not":"multipart"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobCreate_BodyTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewJobHandler(&stubJobService{})
	r := gin.New()
	r.Use(middleware.BodyLimit(1024))
	r.POST("/api/v1/jobs", h.Create)

	big := strings.Repeat("a", 64*1024)
	req := multipartRequest(t, "/api/v1/jobs", map[string]string{"big.pdf": big}, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "FILE_TOO_LARGE")
}

func TestJobCreate_DomainErrorMapped(t *testing.T) {
	svc := &stubJobService{processErr: domain.ErrMissingTemplate}
	r := newJobRouter(svc)

	req := multipartRequest(t, "/api/v1/jobs", map[string]string{"a.pdf": "x"}, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "MISSING_TEMPLATE", resp.Error.Code)
}

func TestJobGet(t *testing.T) {
	summary := sampleSummary()
	r := newJobRouter(&stubJobService{summary: summary})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/jobs/"+summary.JobID.String(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), summary.JobID.String())
}

func TestJobGet_InvalidID(t *testing.T) {
	r := newJobRouter(&stubJobService{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/jobs/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_JOB_ID")
}

func TestJobGet_NotFound(t *testing.T) {
	r := newJobRouter(&stubJobService{getErr: domain.ErrJobNotFound})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/jobs/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "JOB_NOT_FOUND")
}

func TestJobExportCSV(t *testing.T) {
	summary := sampleSummary()
	r := newJobRouter(&stubJobService{summary: summary})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/jobs/"+summary.JobID.String()+"/export", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), summary.JobID.String())

	body := rec.Body.String()
	assert.Contains(t, body, "Document Name")
	assert.Contains(t, body, "agreement.pdf")
	assert.Contains(t, body, "John Smith")
}

func TestJobDownload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed_agreement.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ok":true}`), 0o644))
	r := newJobRouter(&stubJobService{filePath: path})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/download/"+uuid.NewString()+"/processed_agreement.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "processed_agreement.json")
	assert.Equal(t, `{"ok":true}`, rec.Body.String())
}

func TestJobDownload_Missing(t *testing.T) {
	r := newJobRouter(&stubJobService{fileErr: domain.ErrResultFileNotFound})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/download/"+uuid.NewString()+"/nope.json", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RESULT_FILE_NOT_FOUND")
}
