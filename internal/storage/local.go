package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidPath is returned for keys that escape the storage root
var ErrInvalidPath = errors.New("invalid storage path")

// ObjectStorage stores uploaded documents under opaque keys
type ObjectStorage interface {
	Put(r io.Reader, filename, prefix string) (string, error)
	PutBytes(data []byte, filename, prefix string) (string, error)
	Write(key string, data []byte) error
	Open(key string) (*os.File, error)
	Delete(key string) error
	Exists(key string) bool
}

// LocalStorage keeps objects on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates the base directory if needed
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Put copies r to a new object and returns its key, e.g. "folhas/2024/03/<uuid>.pdf"
func (s *LocalStorage) Put(r io.Reader, filename, prefix string) (string, error) {
	key := newKey(filename, prefix)
	fullPath, err := s.SafeFullPath(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return key, nil
}

// PutBytes writes data to a new object and returns its key
func (s *LocalStorage) PutBytes(data []byte, filename, prefix string) (string, error) {
	key := newKey(filename, prefix)
	if err := s.Write(key, data); err != nil {
		return "", err
	}
	return key, nil
}

// Write stores data under an explicit key, replacing any previous object
func (s *LocalStorage) Write(key string, data []byte) error {
	fullPath, err := s.SafeFullPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Open returns the object for reading
func (s *LocalStorage) Open(key string) (*os.File, error) {
	fullPath, err := s.SafeFullPath(key)
	if err != nil {
		return nil, err
	}
	return os.Open(fullPath)
}

// Delete removes an object
func (s *LocalStorage) Delete(key string) error {
	fullPath, err := s.SafeFullPath(key)
	if err != nil {
		return err
	}
	return os.Remove(fullPath)
}

// Exists reports whether the object is present
func (s *LocalStorage) Exists(key string) bool {
	fullPath, err := s.SafeFullPath(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}

// SafeFullPath resolves key under the base path, rejecting traversal
func (s *LocalStorage) SafeFullPath(key string) (string, error) {
	if key == "" || strings.Contains(key, "\x00") {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean("/" + filepath.ToSlash(key))
	if cleaned == "/" {
		return "", ErrInvalidPath
	}

	base, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", err
	}
	full := filepath.Join(base, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return full, nil
}

// ThumbnailKey derives the key of an image's thumbnail
func ThumbnailKey(key string) string {
	ext := path.Ext(key)
	return strings.TrimSuffix(key, ext) + "_thumb.jpg"
}

func newKey(filename, prefix string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(prefix, time.Now().Format("2006/01"), uuid.NewString()+ext)
}

var validContentTypes = map[string]string{
	"application/pdf": ".pdf",
	"image/jpeg":      ".jpg",
	"image/jpg":       ".jpg",
	"image/png":       ".png",
}

// MaxFileSize is the upload limit for signed sheet scans (10 MB)
const MaxFileSize int64 = 10 * 1024 * 1024

// IsValidContentType checks if the content type is allowed
func IsValidContentType(contentType string) bool {
	_, ok := validContentTypes[contentType]
	return ok
}

// IsImage reports whether the content type is a raster image
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// ExtensionFor returns the file extension stored for an allowed content type
func ExtensionFor(contentType string) string {
	return validContentTypes[contentType]
}
