package storage

import (
	"caredesk/caredesk/config"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient stores patient chart attachments (referral letters, scanned
// reports) under documents/{patientID}/.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

type DocumentInfo struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}

	bucket := cfg.MinIOBucket
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: bucket}, nil
}

// UploadDocument streams one attachment into the patient's folder and
// returns its object key.
func (m *MinIOClient) UploadDocument(ctx context.Context, patientID uuid.UUID, filename, contentType string, size int64, body io.Reader) (string, error) {
	key := path.Join("documents", patientID.String(), fmt.Sprintf("%s-%s", uuid.New().String()[:8], filename))
	_, err := m.client.PutObject(ctx, m.bucket, key, body, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (m *MinIOClient) ListDocuments(ctx context.Context, patientID uuid.UUID) ([]DocumentInfo, error) {
	prefix := path.Join("documents", patientID.String()) + "/"
	var docs []DocumentInfo
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		docs = append(docs, DocumentInfo{
			Key:          obj.Key,
			Name:         path.Base(obj.Key),
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return docs, nil
}

// FetchDocument returns the object stream; the caller closes it.
func (m *MinIOClient) FetchDocument(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}
