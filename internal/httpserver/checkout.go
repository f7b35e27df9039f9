package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshop/internal/domain"
)

type checkoutRequest struct {
	CustomerID string               `json:"customerId,omitempty"`
	Guest      *domain.GuestContact `json:"guest,omitempty"`
}

func checkoutHandler(svc CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if req.CustomerID == "" && req.Guest == nil {
			badRequest(c, "customerId or guest contact required")
			return
		}
		identity := domain.CustomerIdentity{CustomerID: req.CustomerID, Guest: req.Guest}
		o, err := svc.Submit(c.Request.Context(), c.Param("sessionKey"), identity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}
