// Package logout реализует HTTP-обработчик выхода администратора.
//
// Cookie сессии гасится каноничной формой с Max-Age=0; отзыва токена
// на сервере не происходит, токен остается валидным до истечения срока.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ifelse01-debug/subpool-admin/internal/http/middlewarectx"
	"github.com/ifelse01-debug/subpool-admin/internal/http/response"
	"github.com/ifelse01-debug/subpool-admin/internal/http/sessioncookie"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
)

// Auditor описывает запись события в журнал аудита.
type Auditor interface {
	Record(action, subject, remoteAddr string)
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log        *slog.Logger
	audit      Auditor
	cookieOpts sessioncookie.Options
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, audit Auditor, cookieOpts sessioncookie.Options) *Handler {
	return &Handler{
		log:        log,
		audit:      audit,
		cookieOpts: cookieOpts,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subject, _ := r.Context().Value(middlewarectx.Subject).(string)

	log.Info("logout", slog.String("username", subject))
	h.audit.Record(models.AuditActionLogout, subject, r.RemoteAddr)

	w.Header().Set("Set-Cookie", sessioncookie.Clear(h.cookieOpts))
	render.JSON(w, r, response.OK())
}
