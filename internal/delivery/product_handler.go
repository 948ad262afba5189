package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/atarek872/Clean-Architecture/internal/app"
	"github.com/atarek872/Clean-Architecture/internal/app/command"
	"github.com/atarek872/Clean-Architecture/internal/app/query"
	"github.com/atarek872/Clean-Architecture/internal/domain"
)

// CreateProductRequest is the payload for POST /products.
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
}

// UpdateProductRequest is the payload for PATCH /products/:id. Omitted fields
// are left unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// UpdateStockRequest is the payload for PATCH /products/:id/stock.
type UpdateStockRequest struct {
	Stock *int64 `json:"stock" binding:"required"`
}

type ProductHandler struct {
	app *app.Application
	log *logrus.Logger
}

func NewProductHandler(application *app.Application, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		app: application,
		log: logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("", h.CreateProduct)
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.PATCH("/:id", h.UpdateProduct)
		products.PATCH("/:id/stock", h.UpdateProductStock)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Handler: Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.app.Commands.CreateProduct.Handle(c.Request.Context(), command.CreateProduct{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Handler: Failed to create product '%s': %v", req.Name, err)
		ErrorResponse(c, statusCode, "Failed to create product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Product created successfully", gin.H{"id": id})
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	product, err := h.app.Queries.GetProduct.Handle(c.Request.Context(), query.GetProduct{ID: id})
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Handler: Failed to get product by ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to retrieve product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		h.log.Warnf("Handler: Invalid limit parameter '%s', using default 10", limitStr)
		limit = 10
	}
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		h.log.Warnf("Handler: Invalid offset parameter '%s', using default 0", offsetStr)
		offset = 0
	}

	products, err := h.app.Queries.ListProducts.Handle(c.Request.Context(), query.ListProducts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Handler: Failed to list products: %v", err)
		ErrorResponse(c, statusCode, "Failed to retrieve products: "+err.Error())
		return
	}

	if len(products) == 0 {
		SuccessResponse(c, http.StatusOK, "No products found", []domain.Product{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Handler: Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.app.Commands.UpdateProduct.Handle(c.Request.Context(), command.UpdateProduct{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Handler: Failed to update product ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to update product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) UpdateProductStock(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Handler: Failed to bind JSON for stock update of product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.app.Commands.UpdateProductStock.Handle(c.Request.Context(), command.UpdateProductStock{
		ID:    id,
		Stock: *req.Stock,
	})
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Handler: Failed to update stock for product ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to update product stock: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product stock updated successfully", product)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.productID(c)
	if !ok {
		return
	}

	if err := h.app.Commands.DeleteProduct.Handle(c.Request.Context(), command.DeleteProduct{ID: id}); err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Handler: Failed to delete product ID %d: %v", id, err)
		ErrorResponse(c, statusCode, "Failed to delete product: "+err.Error())
		return
	}

	SuccessResponse(c, http.StatusOK, "Product deleted successfully", nil)
}

// productID parses the :id path parameter, writing a 400 response on bad input.
func (h *ProductHandler) productID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log.Warnf("Handler: Invalid product ID parameter: %s", idStr)
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return 0, false
	}
	return id, true
}
