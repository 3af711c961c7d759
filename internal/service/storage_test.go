package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/testhelpers"
)

func TestS3ImageStorageUpload(t *testing.T) {
	client := &testhelpers.MockS3API{}
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		return aws.ToString(in.Bucket) == "smartdiet-images" &&
			strings.HasPrefix(aws.ToString(in.Key), "smart-diet-sl/meal-logs/") &&
			strings.HasSuffix(aws.ToString(in.Key), ".jpg") &&
			aws.ToString(in.ContentType) == "image/jpeg"
	})).Return(&s3.PutObjectOutput{}, nil)

	storage := service.NewS3ImageStorage(client, "smartdiet-images", "https://cdn.smartdiet.lk/")
	result, err := storage.Upload(context.Background(), "meal-logs", "Lunch.JPG", "image/jpeg", []byte("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.smartdiet.lk/"+result.Path, result.URL)
	assert.True(t, strings.HasPrefix(result.Path, result.PublicID))
	client.AssertExpectations(t)
}

func TestS3ImageStorageDefaultURL(t *testing.T) {
	client := &testhelpers.MockS3API{}
	client.On("PutObject", mock.Anything, mock.Anything).Return(&s3.PutObjectOutput{}, nil)

	storage := service.NewS3ImageStorage(client, "bucket", "")
	result, err := storage.Upload(context.Background(), "uploads", "a.png", "image/png", []byte("png"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.URL, "https://bucket.s3.amazonaws.com/smart-diet-sl/uploads/"))
}

func TestS3ImageStorageFailure(t *testing.T) {
	client := &testhelpers.MockS3API{}
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	storage := service.NewS3ImageStorage(client, "bucket", "")
	_, err := storage.Upload(context.Background(), "uploads", "a.png", "image/png", []byte("png"))
	assert.ErrorContains(t, err, "access denied")
}

func TestDisabledImageStorage(t *testing.T) {
	_, err := service.DisabledImageStorage{}.Upload(context.Background(), "uploads", "a.png", "image/png", nil)
	assert.ErrorIs(t, err, service.ErrStorageUnavailable)
}
