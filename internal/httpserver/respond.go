package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshop/internal/domain"
	cartsvc "eventshop/internal/service/cart"
	checkoutsvc "eventshop/internal/service/checkout"
)

// respondError maps service errors onto HTTP statuses. Unknown errors stay
// opaque 500s; the request logger already carries the details.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, cartsvc.ErrNotOrderable):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, checkoutsvc.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, checkoutsvc.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
