package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventshop/internal/domain"
)

func listProductsHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"results": products, "total": len(products)})
	}
}

func getProductHandler(svc ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type bulkQuoteRequest struct {
	Entries []domain.BulkEntry `json:"entries"`
}

func bulkQuoteHandler(svc CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req bulkQuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if len(req.Entries) == 0 {
			badRequest(c, "entries required")
			return
		}
		quote, err := svc.Quote(c.Request.Context(), c.Param("id"), req.Entries)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, quote)
	}
}
