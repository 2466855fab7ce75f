package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/serverless-shop/order-pipeline/internal/orders"
)

// OrderSubmitter is the ingress side of the pipeline.
type OrderSubmitter interface {
	Submit(ctx context.Context, body []byte) (orderID string, err error)
}

// OrderReader reads back persisted orders.
type OrderReader interface {
	Get(ctx context.Context, orderID string) (*orders.Order, error)
}

// HandlerConfig groups dependencies for the orders routes.
type HandlerConfig struct {
	Intake OrderSubmitter
	Orders OrderReader
	Logger *zap.Logger
}

// RegisterOrdersRoutes registers the order API routes. Client faults map to
// 400 with the rule message; dependency faults map to 500 with a generic
// message, detail stays in the logs.
func RegisterOrdersRoutes(r *gin.Engine, cfg HandlerConfig) {
	r.POST("/orders", func(c *gin.Context) {
		body, err := c.GetRawData()
		if err != nil || len(body) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing request body"})
			return
		}

		orderID, err := cfg.Intake.Submit(c.Request.Context(), body)
		if err != nil {
			var ve *orders.ValidationError
			switch {
			case errors.Is(err, orders.ErrMalformedInput):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format"})
			case errors.As(err, &ve):
				c.JSON(http.StatusBadRequest, gin.H{"message": ve.Message})
			default:
				cfg.Logger.Error("order submission failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			return
		}

		c.JSON(http.StatusAccepted, gin.H{
			"message": "Order accepted for processing",
			"orderId": orderID,
		})
	})

	r.GET("/orders/:id", func(c *gin.Context) {
		o, err := cfg.Orders.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			cfg.Logger.Error("order lookup failed",
				zap.String("order_id", c.Param("id")),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if o == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}
		c.JSON(http.StatusOK, o)
	})
}
