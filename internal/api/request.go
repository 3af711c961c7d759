package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smartdiet-sl/smartdiet/backend/internal/middleware"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// MaxImageSize is the largest image accepted by any upload.
const MaxImageSize = 5 << 20

// payloadField is the multipart field carrying the JSON body of a
// create or update request that also sends an image.
const payloadField = "payload"

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// readPayload returns the JSON body of a request and the optional file
// sent under imageField. JSON requests never carry a file.
func readPayload(c *gin.Context, imageField string) ([]byte, *multipart.FileHeader, error) {
	if !isMultipart(c) {
		body, err := c.GetRawData()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read request body: %w", err)
		}
		return body, nil, nil
	}

	payload := []byte(c.PostForm(payloadField))
	file, err := formImage(c, imageField)
	if err != nil {
		return nil, nil, err
	}
	return payload, file, nil
}

// formImage returns the uploaded file under field, or nil when none was sent.
func formImage(c *gin.Context, field string) (*multipart.FileHeader, error) {
	file, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, service.NewValidationError(field, "could not read uploaded file")
	}
	return file, nil
}

// uploadImage checks the file and stores it under folder.
func uploadImage(ctx context.Context, storage service.ImageStorage, folder, field string, file *multipart.FileHeader) (*service.UploadResult, error) {
	if file.Size > MaxImageSize {
		return nil, service.NewValidationError(field, "image must be 5MB or smaller")
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, service.NewValidationError(field, "only image files are allowed")
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, service.NewValidationError(field, "image must be 5MB or smaller")
	}

	return storage.Upload(ctx, folder, file.Filename, contentType, data)
}

// uploadIfPresent uploads file when one was sent and returns its URL.
func uploadIfPresent(ctx context.Context, storage service.ImageStorage, folder, field string, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	result, err := uploadImage(ctx, storage, folder, field, file)
	if err != nil {
		return "", err
	}
	return result.URL, nil
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (uuid.UUID, error) {
	return service.ParseID(c.Param("id"))
}

// requireUserID returns the authenticated user's id or writes a 401.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		respondError(c, service.ErrUnauthorized)
		return uuid.Nil, false
	}
	return id, true
}
