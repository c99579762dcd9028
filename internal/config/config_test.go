package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5000", cfg.Server.Addr())
	assert.Equal(t, "uploads", cfg.Folders.Upload)
	assert.Equal(t, "temp", cfg.Folders.Temp)
	assert.Equal(t, "results", cfg.Folders.Result)
	assert.Equal(t, int64(16*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, 10, cfg.Upload.MaxFilesPerReq)
	assert.Equal(t, "en_core_web_sm", cfg.Extraction.Model)
	assert.False(t, cfg.Extraction.EnableOCR)
	assert.Equal(t, "none", cfg.Storage.Backend)
	assert.Equal(t, []string{"http://localhost:5000", "http://127.0.0.1:5000"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CISGEN_CORS_ALLOWED_ORIGINS", "https://cis.example.com, https://staging.cis.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"https://cis.example.com", "https://staging.cis.example.com"},
		cfg.CORS.AllowedOrigins)
}

func TestLoad_BareEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("UPLOAD_FOLDER", "/data/uploads")
	t.Setenv("MAX_FILE_SIZE", "1048576")
	t.Setenv("MAX_FILES_PER_REQUEST", "3")
	t.Setenv("ENABLE_OCR", "true")
	t.Setenv("SPACY_MODEL", "en_core_web_lg")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "/data/uploads", cfg.Folders.Upload)
	assert.Equal(t, int64(1048576), cfg.Upload.MaxFileSize)
	assert.Equal(t, 3, cfg.Upload.MaxFilesPerReq)
	assert.True(t, cfg.Extraction.EnableOCR)
	assert.Equal(t, "en_core_web_lg", cfg.Extraction.Model)
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	t.Setenv("CISGEN_STORAGE_BACKEND", "s3")
	t.Setenv("CISGEN_S3_BUCKET", "my-results")
	t.Setenv("CISGEN_S3_REGION", "eu-west-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "my-results", cfg.S3.Bucket)
	assert.Equal(t, "eu-west-1", cfg.S3.Region)
}

func TestFolderConfig_EnsureAll(t *testing.T) {
	base := t.TempDir()
	f := FolderConfig{
		Upload: filepath.Join(base, "uploads"),
		Temp:   filepath.Join(base, "temp"),
		Result: filepath.Join(base, "results"),
		Config: filepath.Join(base, "config"),
	}

	require.NoError(t, f.EnsureAll())
	for _, dir := range []string{f.Upload, f.Temp, f.Result, f.Config} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent on existing folders.
	assert.NoError(t, f.EnsureAll())
}

func TestFolderConfig_ExtractionConfigFile(t *testing.T) {
	f := FolderConfig{Config: "config"}
	assert.Equal(t, filepath.Join("config", "extraction_config.json"), f.ExtractionConfigFile())
}
