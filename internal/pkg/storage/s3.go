package storage

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/pkg/errors"
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Storage struct {
	client     *s3.Client
	presign    *s3.PresignClient
	bucket     string
	baseURL    string
	presignTTL time.Duration
	maxSize    int64
}

func NewS3(ctx context.Context, cfg *config.StorageConfig) (Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &s3Storage{
		client:     client,
		presign:    s3.NewPresignClient(client),
		bucket:     cfg.S3Bucket,
		baseURL:    strings.TrimRight(cfg.PublicBaseURL, "/"),
		presignTTL: cfg.S3PresignTTL,
		maxSize:    cfg.MaxSize,
	}, nil
}

func (s *s3Storage) Save(ctx context.Context, folder string, fh *multipart.FileHeader) (File, error) {
	if err := Validate(fh, s.maxSize); err != nil {
		return File{}, err
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, errors.BadRequest("error read uploaded file")
	}
	defer src.Close()

	name := GenerateFilename(fh.Filename, time.Now())
	key := path.Join(folder, name)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(contentType(fh)),
		ContentLength: aws.Int64(fh.Size),
	})
	if err != nil {
		return File{}, errors.ExternalError(fmt.Sprintf("error put object: %v", err))
	}

	url, err := s.url(ctx, key)
	if err != nil {
		return File{}, err
	}

	return File{Name: name, Path: key, URL: url}, nil
}

func (s *s3Storage) url(ctx context.Context, key string) (string, error) {
	// a public base url (CDN) wins over presigning
	if strings.HasPrefix(s.baseURL, "http") {
		return s.baseURL + "/" + key, nil
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(po *s3.PresignOptions) {
		po.Expires = s.presignTTL
	})
	if err != nil {
		return "", errors.ExternalError(fmt.Sprintf("error presign object: %v", err))
	}
	return req.URL, nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return errors.ExternalError(fmt.Sprintf("error delete object: %v", err))
	}
	return nil
}
