package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/indrajewels/storefront/pkg/health"
	"github.com/indrajewels/storefront/pkg/middleware"

	"github.com/indrajewels/storefront/internal/service"
)

// RouterConfig bundles the dependencies for NewRouter.
type RouterConfig struct {
	Catalog       *service.CatalogService
	Cart          *service.CartService
	Checkout      *service.CheckoutService
	Orders        *service.OrderService
	HealthHandler *health.Handler
	Logger        *slog.Logger
	CORS          middleware.CORSConfig
	PprofCIDRs    []string
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(cfg.Logger))

	// Health check endpoints
	r.Get("/health/live", cfg.HealthHandler.LivenessHandler())
	r.Get("/health/ready", cfg.HealthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, cfg.PprofCIDRs, cfg.Logger)

	productHandler := NewProductHandler(cfg.Catalog, cfg.Logger)
	cartHandler := NewCartHandler(cfg.Cart, cfg.Logger)
	checkoutHandler := NewCheckoutHandler(cfg.Checkout, cfg.Logger)
	orderHandler := NewOrderHandler(cfg.Orders, cfg.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Catalog is public and sessionless.
		r.Get("/products", productHandler.List)
		r.Get("/products/{id}", productHandler.Get)
		r.Get("/products/{id}/related", productHandler.Related)

		// Cart and checkout are scoped to a browser session.
		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(SessionIDFromHeader)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)

				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{productId}", cartHandler.UpdateQuantity)
				r.Delete("/items/{productId}", cartHandler.RemoveItem)
			})

			r.Post("/checkout", checkoutHandler.PlaceOrder)
		})

		// Tracking needs no session; the order number plus email is the key.
		r.With(ContentTypeJSON).Post("/orders/track", orderHandler.Track)
	})

	return r
}
