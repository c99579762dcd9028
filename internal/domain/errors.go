package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrTooManyFiles         = errors.New("too many files in request")
	ErrMissingTemplate      = errors.New("template file is required")
	ErrInvalidTemplate      = errors.New("template file is missing or malformed")
	ErrMissingDocuments     = errors.New("no document files selected")
	ErrUnreadableDocument   = errors.New("document is unreadable or corrupt")
	ErrJobNotFound          = errors.New("job not found")
	ErrResultFileNotFound   = errors.New("result file not found")
	ErrStorageFailed        = errors.New("writing result to storage failed")
	ErrUnsupportedRendering = errors.New("unsupported output format")
)
