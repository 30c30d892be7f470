// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"customer-service/internal/handler"
	authmw "customer-service/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func SetupRoutes(
	customerHandler *handler.CustomerHandler,
	auth *authmw.AuthMiddleware,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", customerHandler.Health)

	// API routes
	r.Route("/api/v1/customers", func(r chi.Router) {
		r.Use(auth.Require)

		r.Post("/", customerHandler.Create)
		r.Get("/", customerHandler.List)

		r.Post("/identify", customerHandler.Identify)
		r.Post("/upsert", customerHandler.Upsert)

		r.Get("/platform-id/{platformID}", customerHandler.GetByPlatformID)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", customerHandler.Get)
			r.Put("/", customerHandler.Update)
			r.Delete("/", customerHandler.Delete)

			r.Post("/block", customerHandler.Block)
			r.Post("/unblock", customerHandler.Unblock)
			r.Patch("/interaction", customerHandler.TouchInteraction)
			r.Post("/fetch-profile", customerHandler.FetchProfile)
		})
	})

	return r
}

// LoggerMiddleware logs HTTP requests
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()))
		})
	}
}
