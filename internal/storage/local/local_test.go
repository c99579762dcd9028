package local

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cisgen/internal/port"
)

func newTestStorage(t *testing.T) port.ObjectStorage {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestUploadDownloadDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	out, err := s.Upload(ctx, port.UploadInput{
		Bucket: "results",
		Key:    "jobs/abc/extraction_summary.json",
		Body:   strings.NewReader(`{"job_id":"abc"}`),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Location)

	data, err := s.Download(ctx, "results", "jobs/abc/extraction_summary.json")
	require.NoError(t, err)
	assert.Equal(t, `{"job_id":"abc"}`, string(data))

	require.NoError(t, s.Delete(ctx, "results", "jobs/abc/extraction_summary.json"))
	_, err = s.Download(ctx, "results", "jobs/abc/extraction_summary.json")
	assert.Error(t, err)
}

func TestUpload_Overwrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, port.UploadInput{Bucket: "b", Key: "k", Body: strings.NewReader("first")})
	require.NoError(t, err)
	_, err = s.Upload(ctx, port.UploadInput{Bucket: "b", Key: "k", Body: strings.NewReader("second")})
	require.NoError(t, err)

	data, err := s.Download(ctx, "b", "k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestDelete_MissingIsNoError(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.Delete(context.Background(), "b", "never-existed"))
}

func TestResolve_RejectsEscapingKeys(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, port.UploadInput{
		Bucket: "b",
		Key:    "../../outside.txt",
		Body:   strings.NewReader("nope"),
	})
	assert.Error(t, err)

	_, err = s.Download(ctx, "..", "..")
	assert.Error(t, err)

	// Nothing escaped onto the filesystem above the root.
	_, statErr := os.Stat("outside.txt")
	assert.True(t, os.IsNotExist(statErr))
}
