package storage

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/pkg/errors"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

type local struct {
	dir     string
	baseURL string
	maxSize int64
}

func NewLocal(cfg *config.StorageConfig) Storage {
	return &local{
		dir:     cfg.LocalDir,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxSize: cfg.MaxSize,
	}
}

func (l *local) Save(ctx context.Context, folder string, fh *multipart.FileHeader) (File, error) {
	if err := Validate(fh, l.maxSize); err != nil {
		return File{}, err
	}

	name := GenerateFilename(fh.Filename, time.Now())
	dir := filepath.Join(l.dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return File{}, errors.InternalServerError(fmt.Sprintf("error create upload dir: %v", err))
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, errors.BadRequest("error read uploaded file")
	}
	defer src.Close()

	// O_EXCL: never overwrite an existing upload
	dst, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return File{}, errors.InternalServerError(fmt.Sprintf("error create file: %v", err))
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return File{}, errors.InternalServerError(fmt.Sprintf("error write file: %v", err))
	}

	rel := path.Join(folder, name)
	return File{
		Name: name,
		Path: rel,
		URL:  l.baseURL + "/" + rel,
	}, nil
}

func (l *local) Delete(ctx context.Context, p string) error {
	clean := filepath.Clean("/" + p)
	err := os.Remove(filepath.Join(l.dir, clean))
	if err != nil && !os.IsNotExist(err) {
		return errors.InternalServerError(fmt.Sprintf("error delete file: %v", err))
	}
	return nil
}
