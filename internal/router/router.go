package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/order-notifier/internal/handlers"
	"github.com/yourusername/order-notifier/internal/middleware"
)

type Options struct {
	Events            *handlers.EventHandler
	MaxInstances      int
	InvocationTimeout time.Duration
}

func New(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Order notifier is running",
		})
	})

	// Eventarc delivers to the service root by default.
	invocations := router.Group("")
	invocations.Use(
		middleware.ConcurrencyLimit(opts.MaxInstances),
		middleware.InvocationTimeout(opts.InvocationTimeout),
	)
	{
		invocations.POST("/", opts.Events.HandleOrderCreated)
		invocations.POST("/events/orders", opts.Events.HandleOrderCreated)
	}

	return router
}
