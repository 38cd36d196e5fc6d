// Package catalog собирает HTTP-приложение каталога: маршруты, middleware
// и жизненный цикл сервера.
package catalog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/health"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/create"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/list"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/read"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/remove"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/product-catalog/internal/services/auth"
	productservice "github.com/magabrotheeeer/product-catalog/internal/services/product"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, productService *productservice.ProductService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/products", create.New(logger, productService).ServeHTTP)
			r.Get("/products/list", list.New(logger, productService).ServeHTTP)
			r.Get("/products/{id}", read.New(logger, productService).ServeHTTP)
			r.Put("/products/{id}", update.New(logger, productService).ServeHTTP)
			r.Delete("/products/{id}", remove.New(logger, productService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
