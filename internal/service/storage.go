package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UploadFolder is the key prefix every uploaded image is stored under.
const UploadFolder = "smart-diet-sl"

// UploadResult describes a stored image.
type UploadResult struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	PublicID string `json:"publicId"`
}

// ImageStorage stores uploaded images and returns a stable public URL.
type ImageStorage interface {
	Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*UploadResult, error)
}

// S3API is the subset of the S3 client used for uploads.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ImageStorage writes images to a bucket.
type S3ImageStorage struct {
	client        S3API
	bucket        string
	publicBaseURL string
}

// NewS3ImageStorage returns storage for bucket. publicBaseURL, when set,
// replaces the default https://<bucket>.s3.amazonaws.com prefix, e.g. for a CDN.
func NewS3ImageStorage(client S3API, bucket, publicBaseURL string) *S3ImageStorage {
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	}
	return &S3ImageStorage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload stores data under <UploadFolder>/<folder>/<uuid><ext>.
func (s *S3ImageStorage) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*UploadResult, error) {
	publicID := path.Join(UploadFolder, folder, uuid.New().String())
	key := publicID + strings.ToLower(path.Ext(filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := s.publicBaseURL + "/" + key
	logrus.WithFields(logrus.Fields{"key": key, "bytes": len(data)}).Info("image uploaded")
	return &UploadResult{URL: url, Path: key, PublicID: publicID}, nil
}

// DisabledImageStorage stands in when no bucket is configured.
type DisabledImageStorage struct{}

func (DisabledImageStorage) Upload(context.Context, string, string, string, []byte) (*UploadResult, error) {
	return nil, ErrStorageUnavailable
}
