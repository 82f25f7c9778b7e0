package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/oakmart/storefront-api/internal/metrics"
)

// Services bundles the application services the router exposes.
type Services struct {
	Checkout interface {
		CheckoutRunner
		OrderReader
		StockReader
	}
	Cart    CartManager
	Catalog ProductLister
}

// RouterConfig carries the transport-level dependencies.
type RouterConfig struct {
	Logger      *zap.Logger
	Metrics     *metrics.Metrics
	MetricsPage http.Handler
	CORSOrigins []string
}

// NewRouter wires middleware and routes.
func NewRouter(svcs Services, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	if cfg.Metrics != nil {
		r.Use(Instrument(cfg.Metrics))
	}

	r.Get("/health", HealthHandler)
	if cfg.MetricsPage != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsPage)
	}

	r.Get("/products", HandleListProducts(svcs.Catalog, logger))
	r.Get("/cart", HandleGetCart(svcs.Cart, logger))
	r.Post("/cart/items", HandleAddCartItem(svcs.Cart, logger))
	r.Delete("/cart", HandleClearCart(svcs.Cart, logger))
	r.Post("/checkout", HandleCheckout(svcs.Checkout, logger, cfg.Metrics))
	r.Get("/orders/{id}", HandleGetOrder(svcs.Checkout, logger))
	r.Get("/inventory/{sku}", HandleGetStock(svcs.Checkout, logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
	})

	return RequestID(RequestLogger(CORS(cfg.CORSOrigins, r), logger))
}
