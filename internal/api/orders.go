package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/middleware"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
	"github.com/smartdiet-sl/smartdiet/backend/internal/types"
)

// OrderHandler serves checkout and order management.
type OrderHandler struct {
	orders *service.OrderService
	users  middleware.UserLookup
}

func NewOrderHandler(orders *service.OrderService, users middleware.UserLookup) *OrderHandler {
	return &OrderHandler{orders: orders, users: users}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	orders := router.Group("/orders", g.Auth)
	{
		orders.POST("", h.PlaceOrder)
		orders.GET("/mine", h.MyOrders)
		orders.GET("/:id", h.GetOrder)
	}

	admin := router.Group("/admin/orders", g.Auth, g.Admin)
	{
		admin.GET("", h.ListOrders)
		admin.PUT("/:id", h.UpdateOrderStatus)
	}
}

// PlaceOrder handles POST /orders. Prices come from the catalog, not the
// request.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req types.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := h.orders.PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	orders, err := h.orders.ListForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder returns an order to its owner or to an admin.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	actor, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if service.IsNotFound(err) {
			err = service.ErrUnauthorized
		}
		respondError(c, err)
		return
	}

	order, err := h.orders.GetForActor(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus handles PUT /admin/orders/:id {isPaid?, isDelivered?}.
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
