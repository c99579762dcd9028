package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Folders    FolderConfig
	Upload     UploadConfig
	Extraction ExtractionConfig
	Storage    StorageConfig
	S3         S3Config
	CORS       CORSConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	SecretKey    string        `mapstructure:"secret_key"`
}

// Addr returns the listen address for the HTTP server.
func (s *ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// FolderConfig holds the working directories used by the pipeline.
type FolderConfig struct {
	Upload string `mapstructure:"upload"`
	Temp   string `mapstructure:"temp"`
	Result string `mapstructure:"result"`
	Config string `mapstructure:"config"`
}

// EnsureAll creates every configured folder if it does not exist.
func (f *FolderConfig) EnsureAll() error {
	for _, dir := range []string{f.Upload, f.Temp, f.Result, f.Config} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// ExtractionConfigFile returns the path of the pattern configuration file.
func (f *FolderConfig) ExtractionConfigFile() string {
	return filepath.Join(f.Config, "extraction_config.json")
}

// UploadConfig holds file upload limits.
type UploadConfig struct {
	MaxFileSize    int64 `mapstructure:"max_file_size"`
	MaxFilesPerReq int   `mapstructure:"max_files_per_request"`
}

// ExtractionConfig holds extraction engine settings.
type ExtractionConfig struct {
	Model     string `mapstructure:"model"`
	EnableOCR bool   `mapstructure:"enable_ocr"`
}

// StorageConfig selects the result archive backend.
type StorageConfig struct {
	Backend  string `mapstructure:"backend"`   // "none", "local" or "s3"
	LocalDir string `mapstructure:"local_dir"` // base dir for the local backend
}

// S3Config holds AWS S3 settings for result archiving.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables. The folder and
// extraction knobs use the bare variable names the deployment scripts
// already set (UPLOAD_FOLDER, SPACY_MODEL, ...); everything else is
// prefixed with CISGEN_.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("CISGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.secret_key", "dev_key_for_development")

	// Folder defaults
	v.SetDefault("folders.upload", "uploads")
	v.SetDefault("folders.temp", "temp")
	v.SetDefault("folders.result", "results")
	v.SetDefault("folders.config", "config")

	// Upload defaults
	v.SetDefault("upload.max_file_size", 16*1024*1024)
	v.SetDefault("upload.max_files_per_request", 10)

	// Extraction defaults
	v.SetDefault("extraction.model", "en_core_web_sm")
	v.SetDefault("extraction.enable_ocr", false)

	// Storage defaults
	v.SetDefault("storage.backend", "none")
	v.SetDefault("storage.local_dir", "archive")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "cisgen-results")
	v.SetDefault("s3.endpoint", "")

	// CORS defaults. The app serves its own pages, so only local dev
	// frontends are allowed unless overridden.
	v.SetDefault("cors.allowed_origins", "http://localhost:5000,http://127.0.0.1:5000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly. The bare names match the
	// original deployment environment.
	envBindings := map[string]string{
		"server.host":                  "HOST",
		"server.port":                  "PORT",
		"server.secret_key":            "SECRET_KEY",
		"server.environment":           "CISGEN_SERVER_ENVIRONMENT",
		"server.read_timeout":          "CISGEN_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "CISGEN_SERVER_WRITE_TIMEOUT",
		"folders.upload":               "UPLOAD_FOLDER",
		"folders.temp":                 "TEMP_FOLDER",
		"folders.result":               "RESULT_FOLDER",
		"folders.config":               "CONFIG_FOLDER",
		"upload.max_file_size":         "MAX_FILE_SIZE",
		"upload.max_files_per_request": "MAX_FILES_PER_REQUEST",
		"extraction.model":             "SPACY_MODEL",
		"extraction.enable_ocr":        "ENABLE_OCR",
		"storage.backend":              "CISGEN_STORAGE_BACKEND",
		"storage.local_dir":            "CISGEN_STORAGE_LOCAL_DIR",
		"s3.region":                    "CISGEN_S3_REGION",
		"s3.bucket":                    "CISGEN_S3_BUCKET",
		"s3.endpoint":                  "CISGEN_S3_ENDPOINT",
		"s3.access_key":                "CISGEN_S3_ACCESS_KEY",
		"s3.secret_key":                "CISGEN_S3_SECRET_KEY",
		"cors.allowed_origins":         "CISGEN_CORS_ALLOWED_ORIGINS",
		"log.level":                    "CISGEN_LOG_LEVEL",
		"log.format":                   "CISGEN_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.Server = ServerConfig{
		Host:         v.GetString("server.host"),
		Port:         v.GetString("server.port"),
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
		SecretKey:    v.GetString("server.secret_key"),
	}
	cfg.Folders = FolderConfig{
		Upload: v.GetString("folders.upload"),
		Temp:   v.GetString("folders.temp"),
		Result: v.GetString("folders.result"),
		Config: v.GetString("folders.config"),
	}
	cfg.Upload = UploadConfig{
		MaxFileSize:    v.GetInt64("upload.max_file_size"),
		MaxFilesPerReq: v.GetInt("upload.max_files_per_request"),
	}
	cfg.Extraction = ExtractionConfig{
		Model:     v.GetString("extraction.model"),
		EnableOCR: v.GetBool("extraction.enable_ocr"),
	}
	cfg.Storage = StorageConfig{
		Backend:  v.GetString("storage.backend"),
		LocalDir: v.GetString("storage.local_dir"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	// The allowed origins come in as one comma-separated string.
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
