// Package login реализует HTTP-обработчик входа администратора.
//
// Запрос декодируется и валидируется, учетные данные сверяются сервисом
// аутентификации; при успехе выпущенный сессионный токен привязывается
// к cookie через заголовок Set-Cookie.
package login

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ifelse01-debug/subpool-admin/internal/http/response"
	"github.com/ifelse01-debug/subpool-admin/internal/http/sessioncookie"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
	"github.com/ifelse01-debug/subpool-admin/internal/metrics"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
	adminservice "github.com/ifelse01-debug/subpool-admin/internal/services/admin"
)

// Request — структура входных данных для входа администратора.
type Request struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(username, password string) (string, error)
}

// Auditor описывает запись события в журнал аудита.
type Auditor interface {
	Record(action, subject, remoteAddr string)
}

// Handler обрабатывает HTTP-запросы входа.
type Handler struct {
	log        *slog.Logger
	auth       Service
	audit      Auditor
	cookieOpts sessioncookie.Options
	sessionTTL time.Duration
	validate   *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service, audit Auditor, cookieOpts sessioncookie.Options, sessionTTL time.Duration) *Handler {
	return &Handler{
		log:        log,
		auth:       auth,
		audit:      audit,
		cookieOpts: cookieOpts,
		sessionTTL: sessionTTL,
		validate:   validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if errors.Is(err, adminservice.ErrInvalidCredentials) {
		log.Warn("login rejected", slog.String("username", req.Username))
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		h.audit.Record(models.AuditActionLoginFailed, req.Username, r.RemoteAddr)
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	log.Info("login success", slog.String("username", req.Username))
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	h.audit.Record(models.AuditActionLogin, req.Username, r.RemoteAddr)

	w.Header().Set("Set-Cookie", sessioncookie.Build(token, int(h.sessionTTL.Seconds()), h.cookieOpts))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"username": req.Username,
	}))
}
