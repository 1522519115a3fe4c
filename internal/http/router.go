package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/rogerio-castellano/inventory-rest/docs"
	"github.com/rogerio-castellano/inventory-rest/internal/auth"
	"github.com/rogerio-castellano/inventory-rest/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventory-rest/internal/http/rate_limiter"
	"github.com/rogerio-castellano/inventory-rest/internal/logger"
	"github.com/rogerio-castellano/inventory-rest/internal/repo"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Deps are the collaborators of the router. Issuer, Limiter and Metrics are optional;
// a nil Issuer leaves every route open. TrustProxyHeaders makes the limiter key
// clients by X-Forwarded-For / X-Real-IP instead of the connection address.
type Deps struct {
	Products repo.ProductInventory
	Records  repo.RecordInventory
	Users    repo.UserRepository
	Issuer   *auth.Issuer
	Limiter  *rl.Limiter
	Metrics  *Metrics
	Logger   *zap.Logger

	TrustProxyHeaders bool
}

func NewRouter(d Deps) http.Handler {
	log := d.Logger
	if log == nil {
		log = logger.NewNop()
	}
	metrics := d.Metrics
	if metrics == nil {
		metrics = NewMetrics()
	}

	r := chi.NewRouter()
	if d.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(log))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handlers.Health(log))
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Group(func(r chi.Router) {
		if d.Limiter != nil {
			r.Use(d.Limiter.Middleware)
		}

		if d.Issuer != nil && d.Users != nil {
			r.Post("/login", handlers.NewAuthHandler(d.Users, d.Issuer, log).Login)
		}

		r.Group(func(r chi.Router) {
			if d.Issuer != nil {
				r.Use(AuthMiddleware(d.Issuer))
			}

			products := handlers.NewProductResource(d.Products, log.Named("products"))
			r.Get("/products", products.List)
			r.Post("/products", products.Create)
			r.Get("/products/{id}", products.Get)
			r.Put("/products/{id}", products.Update)
			r.Delete("/products/{id}", products.Delete)

			records := handlers.NewRecordResource(d.Records, log.Named("records"))
			r.Get("/records", records.List)
			r.Post("/records", records.Create)
			r.Get("/records/{id}", records.Get)
			r.Put("/records/{id}", records.Update)
			r.Delete("/records/{id}", records.Delete)
		})
	})

	return r
}
