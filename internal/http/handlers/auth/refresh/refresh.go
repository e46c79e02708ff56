// Package refresh реализует HTTP-обработчик продления сессии.
//
// Текущий токен извлекается из cookie и перевыпускается с новым сроком
// действия; пользовательские утверждения переносятся без изменений.
package refresh

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ifelse01-debug/subpool-admin/internal/http/middlewarectx"
	"github.com/ifelse01-debug/subpool-admin/internal/http/response"
	"github.com/ifelse01-debug/subpool-admin/internal/http/sessioncookie"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sessiontoken"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
	"github.com/ifelse01-debug/subpool-admin/internal/metrics"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
)

// Service описывает интерфейс перевыпуска сессионного токена.
type Service interface {
	Refresh(token string) (string, error)
}

// Auditor описывает запись события в журнал аудита.
type Auditor interface {
	Record(action, subject, remoteAddr string)
}

// Handler обрабатывает HTTP-запросы продления сессии.
type Handler struct {
	log        *slog.Logger
	auth       Service
	audit      Auditor
	cookieOpts sessioncookie.Options
	sessionTTL time.Duration
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service, audit Auditor, cookieOpts sessioncookie.Options, sessionTTL time.Duration) *Handler {
	return &Handler{
		log:        log,
		auth:       auth,
		audit:      audit,
		cookieOpts: cookieOpts,
		sessionTTL: sessionTTL,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token, ok := sessioncookie.Extract(r)
	if !ok {
		log.Warn("refresh without session cookie")
		metrics.SessionRefreshes.WithLabelValues("rejected").Inc()
		w.Header().Set("Set-Cookie", sessioncookie.Clear(h.cookieOpts))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	fresh, err := h.auth.Refresh(token)
	if errors.Is(err, sessiontoken.ErrInvalidToken) {
		log.Warn("refresh rejected")
		metrics.SessionRefreshes.WithLabelValues("rejected").Inc()
		w.Header().Set("Set-Cookie", sessioncookie.Clear(h.cookieOpts))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	if err != nil {
		log.Error("refresh failed", sl.Err(err))
		metrics.SessionRefreshes.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	subject, _ := r.Context().Value(middlewarectx.Subject).(string)

	log.Info("session refreshed", slog.String("username", subject))
	metrics.SessionRefreshes.WithLabelValues("success").Inc()
	h.audit.Record(models.AuditActionRefresh, subject, r.RemoteAddr)

	w.Header().Set("Set-Cookie", sessioncookie.Build(fresh, int(h.sessionTTL.Seconds()), h.cookieOpts))
	render.JSON(w, r, response.OK())
}
