// Package server composes the HTTP router of the library service
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/libraryservice/backend/internal/auth/policy"
	"github.com/libraryservice/backend/internal/handlers"
	loggerMiddleware "github.com/libraryservice/backend/internal/logger/middleware"
	"github.com/libraryservice/backend/internal/middlewares"
	"github.com/libraryservice/backend/internal/models"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// maxRequestSize bounds request bodies, every payload of the API is a small JSON document or form
const maxRequestSize = 1 << 20

// Pinger is the interface that wraps the store health check, *sql.DB satisfies it
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options holds the router settings taken from configuration
type Options struct {
	AllowedOrigins         []string
	RequestsPerMinute      int
	LoginRequestsPerMinute int
}

// Dependencies holds everything the router dispatches to
type Dependencies struct {
	AuthService   handlers.AuthService
	BookService   handlers.BookService
	MemberService handlers.MemberService
	Gate          *policy.Gate
	DB            Pinger
	Logger        *zap.Logger
}

// NewRouter builds the chi router with the shared middleware stack and every route of the API
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(deps.Logger))
	r.Use(middlewares.RecoveryMiddleware(deps.Logger))
	r.Use(middlewares.CORSMiddleware(opts.AllowedOrigins))
	if opts.RequestsPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RequestsPerMinute, time.Minute))
	}
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Get("/health", healthHandler(deps.DB, deps.Logger))

	authenticated := deps.Gate.Middleware(policy.RequireAuthenticated())
	librarianOnly := deps.Gate.Middleware(policy.RequireRole(models.RoleLibrarian))
	memberOnly := deps.Gate.Middleware(policy.RequireRole(models.RoleMember))
	selfMember := deps.Gate.Middleware(policy.RequireSelf(models.RoleMember))

	loginLimiter := func(next http.Handler) http.Handler { return next }
	if opts.LoginRequestsPerMinute > 0 {
		loginLimiter = httprate.Limit(
			opts.LoginRequestsPerMinute,
			time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP, httprate.KeyByEndpoint),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"too many login attempts"}`))
			}),
		)
	}

	handlers.NewAuthHandler(deps.AuthService, deps.Logger).RegisterRoutes(r, selfMember, loginLimiter)
	handlers.NewBookHandler(deps.BookService, deps.Logger).RegisterRoutes(r, authenticated, librarianOnly, memberOnly)
	handlers.NewMemberHandler(deps.MemberService, deps.Logger).RegisterRoutes(r, librarianOnly)

	return r
}

// healthHandler handles GET /health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func healthHandler(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}

		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
