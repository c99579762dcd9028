package pdftext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cisgen/internal/domain"
)

type fakeRunner struct {
	stdout []byte
	stderr []byte
	err    error

	calledName string
	calledArgs []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calledName = name
	f.calledArgs = args
	return f.stdout, f.stderr, f.err
}

func TestOCRRunner_ExtractText(t *testing.T) {
	runner := &fakeRunner{stdout: []byte("scanned page text")}
	ocr := NewOCRRunnerWith(runner, "pdftotext")

	text, err := ocr.ExtractText(context.Background(), "/tmp/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "scanned page text", text)
	assert.Equal(t, "pdftotext", runner.calledName)
	assert.Equal(t, []string{"-layout", "/tmp/doc.pdf", "-"}, runner.calledArgs)
}

func TestOCRRunner_CommandFailure(t *testing.T) {
	runner := &fakeRunner{stderr: []byte("Syntax Error: bad xref"), err: errors.New("exit status 1")}
	ocr := NewOCRRunnerWith(runner, "pdftotext")

	_, err := ocr.ExtractText(context.Background(), "/tmp/doc.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad xref")
}

func TestExtractText_MissingFile(t *testing.T) {
	e := NewExtractor(false)
	_, err := e.ExtractText(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	assert.True(t, errors.Is(err, domain.ErrUnreadableDocument))
}

func TestExtractText_Directory(t *testing.T) {
	e := NewExtractor(false)
	_, err := e.ExtractText(context.Background(), t.TempDir())
	assert.True(t, errors.Is(err, domain.ErrUnreadableDocument))
}

func TestExtractText_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a pdf"), 0o644))

	e := NewExtractor(false)
	_, err := e.ExtractText(context.Background(), path)
	assert.True(t, errors.Is(err, domain.ErrUnreadableDocument))
}

func TestIsEmptyText(t *testing.T) {
	assert.True(t, isEmptyText(""))
	assert.True(t, isEmptyText("--- Page 1 ---\n\n\n--- Page 2 ---\n\n"))
	assert.False(t, isEmptyText("--- Page 1 ---\nsome actual content\n"))
}
