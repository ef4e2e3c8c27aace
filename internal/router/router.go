package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-be/internal/controllers"
	"storefront-be/internal/middleware"
	"storefront-be/internal/service"
)

// Dependencies are the services the HTTP layer is built from
type Dependencies struct {
	AuthService    service.AuthService
	ProductService service.ProductService
	Tokens         middleware.TokenValidator
	CORSOrigin     string
	FrontendURL    string
}

// New builds the gin engine with every route of the API
func New(deps Dependencies) *gin.Engine {
	controllers.UseJSONFieldNames()

	// Initialize controllers
	authController := controllers.NewAuthController(deps.AuthService)
	productController := controllers.NewProductController(deps.ProductService)
	qrcodeController := controllers.NewQRCodeController(deps.ProductService, deps.FrontendURL)

	authGate := middleware.AuthMiddleware(deps.Tokens, deps.AuthService)

	// gin.Default adds request logging and panic recovery
	router := gin.Default()
	router.Use(middleware.CORS(deps.CORSOrigin))

	// Health check endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "OK",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/me", authGate, authController.Me)
		}

		// Reads are public, writes require a valid token
		products := api.Group("/products")
		{
			products.GET("", productController.ListProducts)
			products.GET("/:id", productController.GetProduct)
			products.GET("/:id/qrcode", qrcodeController.GenerateProductQRCode)
			products.POST("", authGate, productController.CreateProduct)
			products.PUT("/:id", authGate, productController.UpdateProduct)
			products.DELETE("/:id", authGate, productController.DeleteProduct)
		}
	}

	return router
}
