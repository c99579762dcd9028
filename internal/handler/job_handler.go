package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cisgen/internal/csvexport"
	"cisgen/internal/domain"
	"cisgen/internal/service"
)

// JobHandler handles document processing job endpoints.
type JobHandler struct {
	jobs service.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Create handles POST /api/v1/jobs
func (h *JobHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			HandleError(c, domain.ErrFileTooLarge)
			return
		}
		RespondError(c, http.StatusBadRequest, "INVALID_MULTIPART", "request must be multipart/form-data")
		return
	}

	input := service.ProcessInput{Documents: form.File["documents"]}
	if templates := form.File["template"]; len(templates) > 0 {
		input.Template = templates[0]
	}

	summary, err := h.jobs.Process(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, summary)
}

// Get handles GET /api/v1/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JOB_ID", "job id must be a valid UUID")
		return
	}

	summary, err := h.jobs.GetSummary(c.Request.Context(), jobID)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, summary)
}

// ExportCSV handles GET /api/v1/jobs/:id/export
func (h *JobHandler) ExportCSV(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JOB_ID", "job id must be a valid UUID")
		return
	}

	summary, err := h.jobs.GetSummary(c.Request.Context(), jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="cisgen_results_`+jobID.String()+`.csv"`)
	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		log.Printf("JobHandler.ExportCSV: writing header: %v", err)
		return
	}
	if err := w.WriteResults(summary.Results); err != nil {
		log.Printf("JobHandler.ExportCSV: writing rows: %v", err)
		return
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Printf("JobHandler.ExportCSV: flushing: %v", err)
	}
}

// Download handles GET /download/:job_id/:filename
func (h *JobHandler) Download(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JOB_ID", "job id must be a valid UUID")
		return
	}

	filename := c.Param("filename")
	path, err := h.jobs.ResultFilePath(jobID, filename)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.FileAttachment(path, filename)
}
