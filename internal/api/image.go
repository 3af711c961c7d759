package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// UploadHandler stores images for the client.
type UploadHandler struct {
	storage service.ImageStorage
}

func NewUploadHandler(storage service.ImageStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	router.POST("/upload", g.Auth, h.UploadImage)
}

// UploadImage handles POST /upload with a multipart "image" file.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if !isMultipart(c) {
		respondError(c, service.NewValidationError("image", "No file uploaded"))
		return
	}
	file, err := formImage(c, "image")
	if err != nil {
		respondError(c, err)
		return
	}
	if file == nil {
		respondError(c, service.NewValidationError("image", "No file uploaded"))
		return
	}

	result, err := uploadImage(c.Request.Context(), h.storage, "uploads", "image", file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Image uploaded successfully",
		"url":      result.URL,
		"imageUrl": result.URL,
		"path":     result.Path,
		"publicId": result.PublicID,
	})
}
