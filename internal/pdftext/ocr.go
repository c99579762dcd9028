package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner lets tests stub the external OCR command.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	err := cmd.Run()
	return out.Bytes(), errb.Bytes(), err
}

// OCRRunner extracts text from scanned PDFs by shelling out to
// pdftotext from poppler-utils.
type OCRRunner struct {
	runner Runner
	binary string
}

// NewOCRRunner creates an OCRRunner using the real pdftotext binary.
func NewOCRRunner() *OCRRunner {
	return &OCRRunner{runner: execRunner{}, binary: "pdftotext"}
}

// NewOCRRunnerWith creates an OCRRunner with a custom Runner, for tests.
func NewOCRRunnerWith(r Runner, binary string) *OCRRunner {
	return &OCRRunner{runner: r, binary: binary}
}

// ExtractText runs the OCR command against path and returns its output.
func (o *OCRRunner) ExtractText(ctx context.Context, path string) (string, error) {
	stdout, stderr, err := o.runner.Run(ctx, o.binary, "-layout", path, "-")
	if err != nil {
		msg := strings.TrimSpace(string(stderr))
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("%s failed: %s", o.binary, msg)
	}
	return string(stdout), nil
}
