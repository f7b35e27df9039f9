package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartsvc "eventshop/internal/service/cart"
)

// createSessionHandler hands out a fresh session key. Clients that already
// hold one just keep using it; carts are created lazily on first write.
func createSessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"sessionKey": uuid.NewString()})
	}
}

func getCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Get(c.Request.Context(), c.Param("sessionKey"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func addItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.AddItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if in.ProductID == "" {
			badRequest(c, "productId required")
			return
		}
		view, err := svc.AddItem(c.Request.Context(), c.Param("sessionKey"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func addBulkHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.BulkInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if in.ProductID == "" {
			badRequest(c, "productId required")
			return
		}
		if len(in.Entries) == 0 {
			badRequest(c, "entries required")
			return
		}
		view, err := svc.AddBulk(c.Request.Context(), c.Param("sessionKey"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func updateQuantityHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if in.ProductID == "" {
			badRequest(c, "productId required")
			return
		}
		view, err := svc.UpdateQuantity(c.Request.Context(), c.Param("sessionKey"), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func removeItemHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Query("productId")
		if productID == "" {
			badRequest(c, "productId required")
			return
		}
		view, err := svc.Remove(c.Request.Context(), c.Param("sessionKey"), productID, c.Query("color"), c.Query("size"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func clearCartHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.Request.Context(), c.Param("sessionKey")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
