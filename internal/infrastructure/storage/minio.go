package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/meetsync-team/meetsync/pkg/config"
)

// TranscriptArchive stores raw uploaded transcripts in object storage so the
// original text survives independently of the database row
type TranscriptArchive struct {
	client *minio.Client
	bucket string
}

// NewTranscriptArchive creates the archive client and ensures the bucket exists
func NewTranscriptArchive(cfg *config.StorageConfig) (*TranscriptArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &TranscriptArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return archive, nil
}

func (a *TranscriptArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Store archives the transcript text for a meeting and returns the object URL
func (a *TranscriptArchive) Store(ctx context.Context, meetingID uuid.UUID, transcript string) (string, error) {
	objectName := fmt.Sprintf("transcripts/%s.txt", meetingID)
	reader := strings.NewReader(transcript)

	_, err := a.client.PutObject(ctx, a.bucket, objectName, reader, int64(len(transcript)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to archive transcript: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", a.client.EndpointURL(), a.bucket, objectName), nil
}

// Fetch retrieves an archived transcript
func (a *TranscriptArchive) Fetch(ctx context.Context, meetingID uuid.UUID) (string, error) {
	objectName := fmt.Sprintf("transcripts/%s.txt", meetingID)

	obj, err := a.client.GetObject(ctx, a.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch transcript: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}

	return string(data), nil
}
