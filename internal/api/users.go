package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// UserHandler serves user administration.
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	admin := router.Group("/admin/users", g.Auth, g.Admin)
	{
		admin.GET("", h.ListUsers)
		admin.PUT("/:id/role", h.ChangeRole)
		admin.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// ChangeRole handles PUT /admin/users/:id/role {role}. Admins cannot change
// their own role.
func (h *UserHandler) ChangeRole(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}
	targetID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req types.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, err := h.users.ChangeRole(c.Request.Context(), actorID, targetID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorID, ok := requireUserID(c)
	if !ok {
		return
	}
	targetID, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.users.DeleteUser(c.Request.Context(), actorID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User removed"})
}
