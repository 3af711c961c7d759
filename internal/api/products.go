package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartdiet-sl/smartdiet/backend/internal/models"
	"github.com/smartdiet-sl/smartdiet/backend/internal/service"
)

// ProductHandler serves the shop catalog.
type ProductHandler struct {
	products *service.ProductService
	admin    crudEndpoints[models.Product, *models.Product]
}

func NewProductHandler(products *service.ProductService, storage service.ImageStorage) *ProductHandler {
	return &ProductHandler{
		products: products,
		admin: crudEndpoints[models.Product, *models.Product]{
			crud:     products.CRUDService,
			storage:  storage,
			folder:   "products",
			name:     "Product",
			setImage: func(p *models.Product, url string) { p.Image = url },
		},
	}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup, g Guards) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)

		admin := products.Group("", g.Auth, g.Admin)
		admin.POST("", h.admin.Create)
		admin.PUT("/:id", h.admin.Update)
		admin.DELETE("/:id", h.admin.Delete)
	}
}

// ListProducts handles GET /products?category&search.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context(), models.ProductFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
