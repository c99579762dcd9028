// Package local implements ObjectStorage on the local filesystem. The
// bucket maps to a base directory and keys to relative paths under it.
package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cisgen/internal/port"
)

type localStorage struct {
	baseDir string
}

// NewStorage creates a filesystem-backed ObjectStorage rooted at baseDir.
func NewStorage(baseDir string) (port.ObjectStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage dir: %w", err)
	}
	return &localStorage{baseDir: baseDir}, nil
}

// resolve joins bucket and key under the base directory, rejecting
// keys that would escape it.
func (l *localStorage) resolve(bucket, key string) (string, error) {
	path := filepath.Join(l.baseDir, bucket, filepath.FromSlash(key))
	base := filepath.Clean(l.baseDir) + string(os.PathSeparator)
	if !strings.HasPrefix(filepath.Clean(path)+string(os.PathSeparator), base) {
		return "", fmt.Errorf("key escapes storage root: %s", key)
	}
	return path, nil
}

func (l *localStorage) Upload(ctx context.Context, input port.UploadInput) (*port.UploadOutput, error) {
	path, err := l.resolve(input.Bucket, input.Key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating object dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating object: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, input.Body); err != nil {
		return nil, fmt.Errorf("writing object: %w", err)
	}
	return &port.UploadOutput{Location: path}, nil
}

func (l *localStorage) Download(ctx context.Context, bucket, key string) ([]byte, error) {
	path, err := l.resolve(bucket, key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading object: %w", err)
	}
	return data, nil
}

func (l *localStorage) Delete(ctx context.Context, bucket, key string) error {
	path, err := l.resolve(bucket, key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting object: %w", err)
	}
	return nil
}
