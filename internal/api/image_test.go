package api

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
)

func TestUploadImage(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "uploader@example.com", models.RoleUser)

	env.storage.On("Upload", anyContext, "uploads", "meal.png", "image/png", []byte("png-data")).
		Return(uploadResult("https://cdn.example.com/uploads/meal.png"), nil).Once()

	w := env.PerformMultipart(http.MethodPost, "/api/upload", nil,
		&testFile{field: "image", name: "meal.png", contentType: "image/png", data: []byte("png-data")}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body map[string]string
	decodeBody(t, w, &body)
	assert.Equal(t, "https://cdn.example.com/uploads/meal.png", body["url"])
	assert.Equal(t, body["url"], body["imageUrl"])
	assert.Equal(t, "smart-diet-sl/test", body["publicId"])
	env.storage.AssertExpectations(t)
}

func TestUploadImageRejections(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "uploader@example.com", models.RoleUser)

	w := env.PerformMultipart(http.MethodPost, "/api/upload", nil,
		&testFile{field: "image", name: "meal.png", contentType: "image/png", data: []byte("png")}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.PerformMultipart(http.MethodPost, "/api/upload", map[string]string{"note": "no file"}, nil, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.PerformMultipart(http.MethodPost, "/api/upload", nil,
		&testFile{field: "image", name: "notes.pdf", contentType: "application/pdf", data: []byte("%PDF")}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	big := bytes.Repeat([]byte{0xff}, MaxImageSize+1)
	w = env.PerformMultipart(http.MethodPost, "/api/upload", nil,
		&testFile{field: "image", name: "huge.jpg", contentType: "image/jpeg", data: big}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env.storage.AssertNotCalled(t, "Upload", anyContext, "uploads", "huge.jpg", "image/jpeg", big)
}
