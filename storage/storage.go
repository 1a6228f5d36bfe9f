package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an archived document does not exist
var ErrNotFound = errors.New("document not found")

// Storage archives rendered contract documents
type Storage interface {
	// Upload stores a document for a contract and returns its storage path
	Upload(ctx context.Context, contractID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves a document by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a document by storage path
	Delete(ctx context.Context, storagePath string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("s3 storage requires a bucket")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

var unsafeChars = strings.NewReplacer(" ", "_", "/", "_", "\\", "_", "..", "_")

// documentPath builds the archive key for a contract document. Documents are
// sharded by the first two characters of the contract id.
func documentPath(contractID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	base := unsafeChars.Replace(strings.TrimSuffix(filename, ext))
	if base == "" {
		base = "contract"
	}

	id := contractID.String()
	return fmt.Sprintf("contracts/%s/%s_%s%s", id[:2], id, base, ext)
}

// contentType determines content type from filename
func contentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".json":
		return "application/json"
	case ".html":
		return "text/html; charset=utf-8"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// ContentType reports the content type a document path is served with
func ContentType(storagePath string) string {
	return contentType(storagePath)
}
