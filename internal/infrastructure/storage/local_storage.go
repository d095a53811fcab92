package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	dashboardapp "github.com/erp/erpapi/internal/application/dashboard"
)

var _ dashboardapp.ReportStorage = (*LocalObjectStorage)(nil)

// LocalObjectStorage keeps objects as files below a root directory. Download
// URLs point at BaseURL, which the router serves from the same directory.
type LocalObjectStorage struct {
	root    string
	baseURL string
}

// NewLocalObjectStorage creates root if needed.
func NewLocalObjectStorage(root, baseURL string) (*LocalObjectStorage, error) {
	if root == "" {
		return nil, errors.New("storage local path is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalObjectStorage{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Root returns the directory holding the objects.
func (s *LocalObjectStorage) Root() string { return s.root }

// BaseURL returns the URL prefix objects are served under.
func (s *LocalObjectStorage) BaseURL() string { return s.baseURL }

func (s *LocalObjectStorage) path(key string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	if !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", fmt.Errorf("storage key %q escapes the storage root", key)
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

// Upload writes data to the file of key. contentType is implied by the key extension.
func (s *LocalObjectStorage) Upload(_ context.Context, key string, data []byte, _ string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create object directory: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write object: %w", err)
	}
	return nil
}

// GenerateDownloadURL returns the public URL of key. Local URLs do not
// expire; the returned time only mirrors the requested lifetime.
func (s *LocalObjectStorage) GenerateDownloadURL(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	p, err := s.path(key)
	if err != nil {
		return "", time.Time{}, err
	}
	if _, err := os.Stat(p); err != nil {
		return "", time.Time{}, fmt.Errorf("object %s: %w", key, err)
	}
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + path.Join(segments...), time.Now().Add(expiresIn), nil
}
