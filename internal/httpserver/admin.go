package httpserver

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshop/internal/domain"
	productsvc "eventshop/internal/service/product"
)

// adminAuth guards the back-office routes with a shared secret header.
// An empty configured secret disables the admin surface.
func adminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		provided := c.GetHeader("X-Admin-Secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		c.Next()
	}
}

func upsertProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in domain.Product
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		p, err := svc.Upsert(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, productsvc.ErrInvalid) {
				badRequest(c, err.Error())
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listOrdersHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{"results": orders, "total": len(orders)})
	}
}

func getOrderHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

func updateOrderStatusHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.Status == "" {
			badRequest(c, "status required")
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
