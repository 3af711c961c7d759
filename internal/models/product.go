package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Product is a shop item. Nutrition is expressed per 100 g.
type Product struct {
	Base
	Name         string    `gorm:"size:200;not null;index" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Brand        string    `gorm:"size:100" json:"brand"`
	Category     string    `gorm:"size:50;index" json:"category"`
	Price        float64   `gorm:"not null" json:"price"`
	CountInStock int       `json:"countInStock"`
	Image        string    `gorm:"size:512" json:"image"`
	Nutrition    Nutrition `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutrition"`
	IsActive     bool      `gorm:"index" json:"isActive"`
}

// NewProduct returns an active, empty product.
func NewProduct() *Product {
	return &Product{IsActive: true}
}

// Validate checks the name, price, stock and nutrition.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "is required")
	}
	if p.Price < 0 {
		return invalid("price", "must not be negative")
	}
	if p.CountInStock < 0 {
		return invalid("countInStock", "must not be negative")
	}
	return p.Nutrition.Validate("nutrition")
}

// ProductFilters narrows a product listing.
type ProductFilters struct {
	Category string
	Search   string
}

// OrderItem is a product line on an order with the price charged.
type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

// ShippingAddress is where an order is delivered.
type ShippingAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Order is a checkout placed by a user.
type Order struct {
	Base
	UserID          uuid.UUID                      `gorm:"type:varchar(36);not null;index" json:"userId"`
	OrderItems      datatypes.JSONSlice[OrderItem] `json:"orderItems"`
	ShippingAddress ShippingAddress                `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingAddress"`
	PaymentMethod   string                         `gorm:"size:50" json:"paymentMethod"`
	ItemsPrice      float64                        `json:"itemsPrice"`
	ShippingPrice   float64                        `json:"shippingPrice"`
	TotalPrice      float64                        `json:"totalPrice"`
	IsPaid          bool                           `gorm:"index" json:"isPaid"`
	PaidAt          *time.Time                     `json:"paidAt,omitempty"`
	IsDelivered     bool                           `gorm:"index" json:"isDelivered"`
	DeliveredAt     *time.Time                     `json:"deliveredAt,omitempty"`
}
