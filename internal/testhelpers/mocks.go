package testhelpers

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/mock"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// MockChatCompletionProvider is a mock implementation of service.ChatCompletionProvider
type MockChatCompletionProvider struct {
	mock.Mock
}

func (m *MockChatCompletionProvider) Name() string {
	return "mock"
}

func (m *MockChatCompletionProvider) Complete(ctx context.Context, req service.CompletionRequest) (*service.Completion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Completion), args.Error(1)
}

// MockImageStorage is a mock implementation of service.ImageStorage
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Upload(ctx context.Context, folder, filename, contentType string, data []byte) (*service.UploadResult, error) {
	args := m.Called(ctx, folder, filename, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

// MockS3API is a mock implementation of service.S3API
type MockS3API struct {
	mock.Mock
}

func (m *MockS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

var (
	_ service.ChatCompletionProvider = (*MockChatCompletionProvider)(nil)
	_ service.ImageStorage           = (*MockImageStorage)(nil)
	_ service.S3API                  = (*MockS3API)(nil)
)
