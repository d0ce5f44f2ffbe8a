package storage

import (
	"bytes"
	"context"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	apperrors "github.com/devpulse-team/devpulse/errors"
	"github.com/devpulse-team/devpulse/pkg/config"
)

// ArchiveMirror copies archived transcripts and generated reports into
// object storage. Mirroring is optional and additive: local archiving is the
// source of truth, the mirror is an off-host backup.
type ArchiveMirror struct {
	client *minio.Client
	bucket string
	logger *zap.Logger
}

// NewArchiveMirror creates the mirror and ensures its bucket exists
func NewArchiveMirror(cfg *config.StorageConfig, logger *zap.Logger) (*ArchiveMirror, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, apperrors.ErrStorageFailed("create client", err)
	}

	mirror := &ArchiveMirror{
		client: client,
		bucket: cfg.BucketName,
		logger: logger,
	}

	if err := mirror.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return mirror, nil
}

func (m *ArchiveMirror) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return apperrors.ErrStorageFailed("check bucket", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return apperrors.ErrStorageFailed("create bucket", err)
		}
	}
	return nil
}

// MirrorTranscript uploads an archived transcript under transcripts/
func (m *ArchiveMirror) MirrorTranscript(ctx context.Context, filename, content string) error {
	return m.putText(ctx, "transcripts/"+filename, content)
}

// MirrorReport uploads a rendered report under reports/
func (m *ArchiveMirror) MirrorReport(ctx context.Context, filename, content string) error {
	return m.putText(ctx, "reports/"+filename, content)
}

func (m *ArchiveMirror) putText(ctx context.Context, objectName, content string) error {
	reader := bytes.NewReader([]byte(content))
	_, err := m.client.PutObject(ctx, m.bucket, objectName, reader, int64(len(content)), minio.PutObjectOptions{
		ContentType: "text/plain",
	})
	if err != nil {
		return apperrors.ErrStorageFailed("upload "+objectName, err)
	}

	if m.logger != nil {
		m.logger.Info("☁️ Mirrored to object storage",
			zap.String("bucket", m.bucket),
			zap.String("object", objectName),
		)
	}
	return nil
}

// ListMirrored lists mirrored object names under a prefix
func (m *ArchiveMirror) ListMirrored(ctx context.Context, prefix string) ([]string, error) {
	names := make([]string, 0)
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, apperrors.ErrStorageFailed("list objects", object.Err)
		}
		names = append(names, object.Key)
	}
	return names, nil
}
