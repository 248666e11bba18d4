package storage

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/pkg/errors"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"

	DefaultMaxSize int64 = 5 << 20
)

var (
	allowedExtensions = map[string]bool{
		".jpeg": true,
		".jpg":  true,
		".png":  true,
		".gif":  true,
		".webp": true,
	}
	allowedMimeTypes = map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}
)

type File struct {
	Name string `json:"name"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type Storage interface {
	Save(ctx context.Context, folder string, fh *multipart.FileHeader) (File, error)
	Delete(ctx context.Context, path string) error
}

func New(ctx context.Context, cfg *config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case DriverS3:
		return NewS3(ctx, cfg)
	case DriverLocal, "":
		return NewLocal(cfg), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

// Validate checks extension, declared content type and size.
func Validate(fh *multipart.FileHeader, maxSize int64) error {
	if fh == nil {
		return errors.BadRequest("image file is required")
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return errors.BadRequest("only jpeg, jpg, png, gif and webp images are allowed")
	}

	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil || !allowedMimeTypes[strings.ToLower(mediaType)] {
		return errors.BadRequest("only jpeg, jpg, png, gif and webp images are allowed")
	}

	if fh.Size > maxSize {
		return errors.BadRequest(fmt.Sprintf("image exceeds the %d bytes limit", maxSize))
	}

	return nil
}

// GenerateFilename returns "<unix-nano>-<slug>-<short-id><ext>".
func GenerateFilename(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := slug.Make(strings.TrimSuffix(filepath.Base(original), filepath.Ext(original)))
	if base == "" {
		base = "image"
	}
	return fmt.Sprintf("%d-%s-%s%s", now.UnixNano(), base, uuid.NewString()[:8], ext)
}

func contentType(fh *multipart.FileHeader) string {
	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil {
		return "application/octet-stream"
	}
	return mediaType
}
