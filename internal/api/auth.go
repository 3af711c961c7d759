package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// AuthHandler serves registration, login and the caller's profile.
type AuthHandler struct {
	authService service.IAuthService
	storage     service.ImageStorage
}

func NewAuthHandler(authService service.IAuthService, storage service.ImageStorage) *AuthHandler {
	return &AuthHandler{authService: authService, storage: storage}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/profile", g.Auth, h.GetProfile)
		auth.PUT("/profile", g.Auth, h.UpdateProfile)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, types.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.AuthResponse{Token: token, User: user})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile accepts JSON, or multipart form fields with an optional
// avatar image.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if isMultipart(c) {
		req.Name = optionalForm(c, "name")
		req.Phone = optionalForm(c, "phone")
		req.Address = optionalForm(c, "address")
		req.Password = optionalForm(c, "password")

		file, err := formImage(c, "avatar")
		if err != nil {
			respondError(c, err)
			return
		}
		url, err := uploadIfPresent(c.Request.Context(), h.storage, "avatars", "avatar", file)
		if err != nil {
			respondError(c, err)
			return
		}
		req.Avatar = url
	} else if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func optionalForm(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}
