// Package upload stores uploaded resume files and turns them into text.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"sitebuilder/internal/config"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"
)

type Storage interface {
	// Save persists data under a sanitized form of name and returns where it
	// was written.
	Save(ctx context.Context, name string, data []byte) (string, error)
}

func NewStorage(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (Storage, error) {
	switch cfg.Driver {
	case config.StorageMinIO:
		return NewMinIOStorage(ctx, cfg, logger)
	default:
		return NewLocalStorage(cfg.UploadDir)
	}
}

// SanitizeFilename keeps only the base name of a client supplied filename.
// Empty or dot-only names become a random uuid.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return uuid.NewString()
	}
	return name
}

type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "data/uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(_ context.Context, name string, data []byte) (string, error) {
	p := filepath.Join(s.dir, SanitizeFilename(name))
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", err
	}
	return p, nil
}

type MinIOStorage struct {
	client *minio.Client
	bucket string
	logger zerolog.Logger
}

func NewMinIOStorage(ctx context.Context, cfg config.StorageConfig, logger zerolog.Logger) (*MinIOStorage, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := &MinIOStorage{client: client, bucket: cfg.MinIOBucket, logger: logger}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, err
	}
	logger.Info().Str("endpoint", cfg.MinIOEndpoint).Str("bucket", cfg.MinIOBucket).Msg("minio storage ready")
	return s, nil
}

func (s *MinIOStorage) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("create bucket %s: %w", s.bucket, err)
	}
	s.logger.Info().Str("bucket", s.bucket).Msg("bucket created")
	return nil
}

func (s *MinIOStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	object := "uploads/" + SanitizeFilename(name)
	_, err := s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mimetype.Detect(data).String(),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", object, err)
	}
	return s.bucket + "/" + object, nil
}
