package admin

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/auth/login"
	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/auth/logout"
	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/auth/refresh"
	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/group/create"
	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/group/list"
	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/group/preview"
	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/group/read"
	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/group/remove"
	"github.com/ifelse01-debug/subpool-admin/internal/http/handlers/group/update"
	"github.com/ifelse01-debug/subpool-admin/internal/http/middlewarectx"
	"github.com/ifelse01-debug/subpool-admin/internal/http/sessioncookie"
	adminservice "github.com/ifelse01-debug/subpool-admin/internal/services/admin"
	auditservice "github.com/ifelse01-debug/subpool-admin/internal/services/audit"
	groupservice "github.com/ifelse01-debug/subpool-admin/internal/services/group"
)

// RouteDeps — зависимости маршрутов административной панели.
type RouteDeps struct {
	Auth         *adminservice.AuthService
	Groups       *groupservice.GroupService
	Audit        *auditservice.AuditService
	Verifier     middlewarectx.Verifier
	CookieOpts   sessioncookie.Options
	SessionTTL   time.Duration
	LoginLimiter *rate.Limiter
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps RouteDeps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/admin", func(r chi.Router) {
		// Вход открыт, но ограничен по частоте
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(deps.LoginLimiter, logger))
			r.Post("/login", login.New(logger, deps.Auth, deps.Audit, deps.CookieOpts, deps.SessionTTL).ServeHTTP)
		})

		// Группа с проверкой сессионной cookie
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(deps.Verifier, deps.Audit, deps.CookieOpts, logger))
			r.Post("/logout", logout.New(logger, deps.Audit, deps.CookieOpts).ServeHTTP)
			r.Post("/refresh", refresh.New(logger, deps.Auth, deps.Audit, deps.CookieOpts, deps.SessionTTL).ServeHTTP)

			r.Post("/groups", create.New(logger, deps.Groups).ServeHTTP)
			r.Get("/groups", list.New(logger, deps.Groups).ServeHTTP)
			r.Get("/groups/{name}", read.New(logger, deps.Groups).ServeHTTP)
			r.Put("/groups/{name}", update.New(logger, deps.Groups).ServeHTTP)
			r.Delete("/groups/{name}", remove.New(logger, deps.Groups).ServeHTTP)
			r.Post("/groups/{name}/preview", preview.New(logger, deps.Groups).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
