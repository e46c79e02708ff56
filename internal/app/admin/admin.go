// Package admin собирает административную панель: хранилище, кэш,
// брокер аудита, сервисы и HTTP-сервер.
package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"
	"golang.org/x/time/rate"

	"github.com/ifelse01-debug/subpool-admin/internal/cache"
	"github.com/ifelse01-debug/subpool-admin/internal/config"
	"github.com/ifelse01-debug/subpool-admin/internal/http/sessioncookie"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sessiontoken"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
	"github.com/ifelse01-debug/subpool-admin/internal/migrations"
	"github.com/ifelse01-debug/subpool-admin/internal/rabbitmq"
	adminservice "github.com/ifelse01-debug/subpool-admin/internal/services/admin"
	auditservice "github.com/ifelse01-debug/subpool-admin/internal/services/audit"
	groupservice "github.com/ifelse01-debug/subpool-admin/internal/services/group"
	"github.com/ifelse01-debug/subpool-admin/internal/storage"
)

// Лимит на конечные точки аутентификации: одна попытка в секунду
// с небольшим запасом на легитимные повторы.
const (
	loginRateLimit = rate.Limit(1)
	loginRateBurst = 5
)

// App держит собранный HTTP-сервер и ресурсы, требующие закрытия.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	broker *amqp.Connection
}

// New собирает приложение из конфигурации: подключает PostgreSQL,
// прогоняет миграции, поднимает redis и rabbitmq, создает сервисы
// и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("configuration loaded",
		slog.String("env", cfg.Env),
		sl.Masked("session_secret", cfg.Session.Secret),
		sl.Masked("admin_password_hash", cfg.Admin.PasswordHash))

	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitURL, 5, 3*time.Second)
	if err != nil {
		return nil, err
	}
	channel, err := rabbitmq.SetupChannel(conn)
	if err != nil {
		return nil, err
	}

	maker, err := sessiontoken.New(sessiontoken.Config{
		Secret:   cfg.Session.Secret,
		Issuer:   cfg.Session.Issuer,
		Audience: cfg.Session.Audience,
		TTL:      cfg.Session.TTL,
	}, logger)
	if err != nil {
		return nil, err
	}

	cookieOpts := sessioncookie.Options{
		Path:     cfg.Session.CookiePath,
		Insecure: cfg.Session.CookieInsecure,
	}

	authService := adminservice.NewAuthService(cfg.Admin, maker)
	groupService := groupservice.NewGroupService(db, cacheRedis, logger)
	auditService := auditservice.NewAuditService(channel, logger)

	loginLimiter := rate.NewLimiter(loginRateLimit, loginRateBurst)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, RouteDeps{
		Auth:         authService,
		Groups:       groupService,
		Audit:        auditService,
		Verifier:     maker,
		CookieOpts:   cookieOpts,
		SessionTTL:   cfg.Session.TTL,
		LoginLimiter: loginLimiter,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		broker: conn,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до отмены контекста,
// после чего останавливает сервер и закрывает ресурсы.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close storage", sl.Err(closeErr))
		}
		if closeErr := a.broker.Close(); closeErr != nil {
			a.logger.Error("failed to close broker connection", sl.Err(closeErr))
		}
		return err
	}
}
