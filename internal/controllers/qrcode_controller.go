package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"storefront-be/internal/apperrors"
	"storefront-be/internal/service"
)

type QRCodeController struct {
	productService service.ProductService
	frontendURL    string
}

func NewQRCodeController(productService service.ProductService, frontendURL string) *QRCodeController {
	return &QRCodeController{
		productService: productService,
		frontendURL:    strings.TrimRight(frontendURL, "/"),
	}
}

// GenerateProductQRCode handles GET /api/products/:id/qrcode - PNG linking to the product page
func (qc *QRCodeController) GenerateProductQRCode(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	// Only existing products get a code
	if _, err := qc.productService.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("ERROR: qrcode lookup for product %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
		return
	}

	productURL := fmt.Sprintf("%s/products/%d", qc.frontendURL, id)

	// Generate QR code (256x256 pixels, medium error recovery)
	qrCode, err := qrcode.New(productURL, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=product-%d.png", id))
	c.Data(http.StatusOK, "image/png", pngData)
}
