package routes

import (
	"net/http"

	"stockroom/internal/handlers"
	"stockroom/internal/middleware"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the local frontend to talk to the API, including the
// Authorization header used for JWT tokens.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:5173")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Public Routes ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		v1.POST("/register", h.Register)
		v1.POST("/login", h.Login)

		// --- Protected Routes (Login Required) ---
		auth := v1.Group("/")
		auth.Use(middleware.AuthMiddleware(h.DB))
		{
			// Inventory
			auth.POST("/products", h.CreateProduct)
			auth.GET("/products", h.GetAllProducts)
			auth.POST("/products/:id/restock", h.RestockProduct)

			// Customers
			auth.GET("/customers", h.GetAllCustomers)
			auth.DELETE("/customers/:id", h.DeleteCustomer)

			// Orders
			auth.POST("/orders", h.PlaceOrder)
			auth.GET("/orders/history", h.GetOrderHistory)
		}
	}

	return router
}
