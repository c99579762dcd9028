package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cisgen/internal/config"
	"cisgen/internal/service"
)

// PageHandler serves the HTML upload and results pages.
type PageHandler struct {
	jobs   service.JobService
	upload config.UploadConfig
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(jobs service.JobService, upload config.UploadConfig) *PageHandler {
	return &PageHandler{jobs: jobs, upload: upload}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"MaxFiles":      h.upload.MaxFilesPerReq,
		"MaxFileSizeMB": h.upload.MaxFileSize / (1024 * 1024),
	})
}

// Upload handles POST /upload
func (h *PageHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.renderError(c, http.StatusRequestEntityTooLarge, "the upload exceeds the maximum request size")
			return
		}
		h.renderError(c, http.StatusBadRequest, "request must be a multipart form upload")
		return
	}

	input := service.ProcessInput{Documents: form.File["documents"]}
	if templates := form.File["template"]; len(templates) > 0 {
		input.Template = templates[0]
	}

	summary, err := h.jobs.Process(c.Request.Context(), input)
	if err != nil {
		status, _, msg := MapDomainError(err)
		h.renderError(c, status, msg)
		return
	}

	c.HTML(http.StatusOK, "results.html", gin.H{
		"JobID":    summary.JobID.String(),
		"Template": summary.Template,
		"Results":  summary.Results,
	})
}

func (h *PageHandler) renderError(c *gin.Context, status int, msg string) {
	c.HTML(status, "index.html", gin.H{
		"MaxFiles":      h.upload.MaxFilesPerReq,
		"MaxFileSizeMB": h.upload.MaxFileSize / (1024 * 1024),
		"Error":         msg,
	})
}
