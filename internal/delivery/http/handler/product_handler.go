package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"product-inventory-api/internal/middleware"
	"product-inventory-api/internal/usecase/product"
	"product-inventory-api/pkg/utils"
)

type ProductHandler struct {
	service *product.Service
}

func NewProductHandler(service *product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// RegisterRoutes registers all product routes; the caller wraps the group in
// the auth middleware.
func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/product")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/category/:category", h.ListByCategory)
		products.GET("/search", h.SearchProducts)
		products.GET("/my-products", h.ListMyProducts)
		products.GET("/statistics", h.GetStatistics)
		products.POST("", h.CreateProduct)
		products.PUT("/:id", h.UpdateProduct)
		products.DELETE("/:id", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	productResponse, err := h.service.GetProduct(c.Request.Context(), productID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, productResponse)
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	products, err := h.service.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.service.SearchByName(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) ListMyProducts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	products, err := h.service.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	var req product.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Description = utils.SanitizeText(req.Description)
	req.Category = utils.SanitizeString(req.Category)

	productResponse, err := h.service.CreateProduct(c.Request.Context(), userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, productResponse)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req product.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Description = utils.SanitizeText(req.Description)
	req.Category = utils.SanitizeString(req.Category)

	productResponse, err := h.service.UpdateProduct(c.Request.Context(), productID, userID, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, productResponse)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), productID, userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (h *ProductHandler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
