package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorageService stores documents on the local filesystem. This is the
// development backend; the files are served back by the server's /files route.
type LocalStorageService struct {
	baseURL    string // server URL, e.g. "http://localhost:8080"
	uploadsDir string // local directory for uploads, e.g. "./uploads"
}

// NewLocalStorageService creates a new local storage service
func NewLocalStorageService(baseURL, uploadsDir string) (*LocalStorageService, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalStorageService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		uploadsDir: uploadsDir,
	}, nil
}

// EnsureBucket makes sure the uploads directory exists
func (s *LocalStorageService) EnsureBucket(ctx context.Context) error {
	return os.MkdirAll(s.uploadsDir, 0755)
}

// Put writes the object under the uploads directory
func (s *LocalStorageService) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes the object; deleting a missing object is not an error
func (s *LocalStorageService) Delete(ctx context.Context, key string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// PublicURL points at the server's own file route
func (s *LocalStorageService) PublicURL(key string) string {
	escaped := url.PathEscape(key)
	// Keep slashes readable in the resulting URL
	escaped = strings.ReplaceAll(escaped, "%2F", "/")
	return fmt.Sprintf("%s/files/%s", s.baseURL, escaped)
}

// Open reads an object back for the file route
func (s *LocalStorageService) Open(key string) (io.ReadCloser, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// resolve maps a key to a path under the uploads directory, rejecting keys
// that would escape it.
func (s *LocalStorageService) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage key: %s", key)
	}
	return filepath.Join(s.uploadsDir, cleaned), nil
}
