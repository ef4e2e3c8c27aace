package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/apperrors"
	"storefront-be/internal/models"
	"storefront-be/internal/service"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// parseProductID reads a positive integer :id, answering 400 otherwise
func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return id, true
}

func invalidPayload(c *gin.Context, issues []models.ValidationIssue) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "Invalid payload",
		"issues": issues,
	})
}

// ListProducts handles GET /api/products
func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.productService.List(c.Request.Context())
	if err != nil {
		log.Printf("ERROR: list products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := pc.productService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("ERROR: get product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if issues := bindJSON(c, &req); issues != nil {
		invalidPayload(c, issues)
		return
	}

	product, err := pc.productService.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ERROR: create product: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Product created successfully",
		"newProduct": product,
	})
}

// UpdateProduct handles PUT /api/products/:id - partial update
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req models.UpdateProductRequest
	if issues := bindJSON(c, &req); issues != nil {
		invalidPayload(c, issues)
		return
	}

	product, err := pc.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("ERROR: update product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product updated successfully",
		"updated": product,
	})
}

// DeleteProduct handles DELETE /api/products/:id
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := pc.productService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("ERROR: delete product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}

	// 204 carries no body on the wire
	c.JSON(http.StatusNoContent, gin.H{
		"message": "Product deleted successfully",
	})
}
