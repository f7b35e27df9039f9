package httpserver

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"eventshop/internal/domain"
	cartsvc "eventshop/internal/service/cart"
)

// ProductService is the catalog surface the handlers need.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, in domain.Product) (*domain.Product, error)
}

// CartService is the session cart surface the handlers need.
type CartService interface {
	Get(ctx context.Context, sessionKey string) (*cartsvc.View, error)
	AddItem(ctx context.Context, sessionKey string, in cartsvc.AddItemInput) (*cartsvc.View, error)
	AddBulk(ctx context.Context, sessionKey string, in cartsvc.BulkInput) (*cartsvc.View, error)
	Quote(ctx context.Context, productID string, entries []domain.BulkEntry) (*domain.BulkQuote, error)
	UpdateQuantity(ctx context.Context, sessionKey string, in cartsvc.UpdateInput) (*cartsvc.View, error)
	Remove(ctx context.Context, sessionKey, productID, color, size string) (*cartsvc.View, error)
	Clear(ctx context.Context, sessionKey string) error
}

// CheckoutService is the order surface the handlers need.
type CheckoutService interface {
	Submit(ctx context.Context, sessionKey string, customer domain.CustomerIdentity) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

// Deps carries the wired services into the router.
type Deps struct {
	ProductSvc  ProductService
	CartSvc     CartService
	CheckoutSvc CheckoutService
	AdminSecret string
}

// buildRouter wires all routes for the API.
func buildRouter(logger *zap.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Admin-Secret")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))
	router.POST("/products/:id/bulk-quote", bulkQuoteHandler(deps.CartSvc))

	router.POST("/carts", createSessionHandler())
	carts := router.Group("/carts/:sessionKey")
	{
		carts.GET("", getCartHandler(deps.CartSvc))
		carts.POST("/items", addItemHandler(deps.CartSvc))
		carts.POST("/bulk", addBulkHandler(deps.CartSvc))
		carts.PATCH("/items", updateQuantityHandler(deps.CartSvc))
		carts.DELETE("/items", removeItemHandler(deps.CartSvc))
		carts.DELETE("", clearCartHandler(deps.CartSvc))
		carts.POST("/checkout", checkoutHandler(deps.CheckoutSvc))
	}

	admin := router.Group("/admin", adminAuth(deps.AdminSecret))
	{
		admin.POST("/products", upsertProductHandler(deps.ProductSvc))
		admin.GET("/orders", listOrdersHandler(deps.CheckoutSvc))
		admin.GET("/orders/:id", getOrderHandler(deps.CheckoutSvc))
		admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.CheckoutSvc))
	}

	return router
}

// requestLogger logs method, path, status and latency for every request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
