package types

import "github.com/smartdiet-sl/smartdiet/backend/internal/models"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the profile fields a user may change.
// Nil fields are left untouched.
type UpdateProfileRequest struct {
	Name     *string `json:"name" form:"name"`
	Phone    *string `json:"phone" form:"phone"`
	Address  *string `json:"address" form:"address"`
	Password *string `json:"password" form:"password"`
	Avatar   string  `json:"-" form:"-"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// DietPlanRequest is the health profile posted to /diet/plan.
type DietPlanRequest struct {
	Weight        float64 `json:"weight" binding:"required,gt=0"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	Age           int     `json:"age" binding:"required,gt=0"`
	BloodPressure string  `json:"bloodPressure"`
	Sugar         string  `json:"sugar"`
	BodyType      string  `json:"bodyType"`
	ActivityLevel string  `json:"activityLevel"`
}

// Profile converts the request to the stored health profile.
func (r DietPlanRequest) Profile() models.HealthProfile {
	return models.HealthProfile{
		Weight:        r.Weight,
		Height:        r.Height,
		Age:           r.Age,
		BloodPressure: r.BloodPressure,
		Sugar:         r.Sugar,
		BodyType:      r.BodyType,
		ActivityLevel: r.ActivityLevel,
	}
}

// ChatRequest is the body of POST /chatbot/chat.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
}

// ClearChatRequest is the body of POST /chatbot/clear.
type ClearChatRequest struct {
	ConversationID string `json:"conversationId"`
}

// CalculateItem references a food or product and a quantity in its serving unit.
type CalculateItem struct {
	Source   string  `json:"source" binding:"omitempty,oneof=food product"`
	ID       string  `json:"id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}

// CalculateRequest is the body of POST /nutrition/calculate.
type CalculateRequest struct {
	Items []CalculateItem `json:"items" binding:"required,dive"`
}

// OrderItemRequest is one cart line at checkout.
type OrderItemRequest struct {
	Product  string `json:"product" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest is the body of POST /orders. Prices are computed on the
// server from the catalog.
type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest     `json:"orderItems" binding:"required,min=1,dive"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod" binding:"required"`
}

// UpdateOrderStatusRequest marks an order paid and/or delivered.
type UpdateOrderStatusRequest struct {
	IsPaid      *bool `json:"isPaid"`
	IsDelivered *bool `json:"isDelivered"`
}

// ChangeRoleRequest is the body of PUT /admin/users/:id/role.
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}
