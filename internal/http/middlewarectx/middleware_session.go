// Package middlewarectx содержит HTTP middleware для проверки сессионной
// cookie административной панели.
//
// SessionMiddleware достает токен из cookie, проверяет его и при успехе
// кладет в контекст субъект сессии. Любой отказ дает единый ответ
// 401 Unauthorized без указания причины, а клиенту ставится сбрасывающая
// cookie, чтобы браузер не пересылал негодный токен.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ifelse01-debug/subpool-admin/internal/http/response"
	"github.com/ifelse01-debug/subpool-admin/internal/http/sessioncookie"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sessiontoken"
	"github.com/ifelse01-debug/subpool-admin/internal/metrics"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
)

// Key — тип для ключей контекста HTTP-запроса.
type Key string

// Subject — ключ субъекта сессии (claim sub) в контексте.
const Subject Key = "sub"

// Verifier описывает проверку сессионного токена.
type Verifier interface {
	Verify(token string) (sessiontoken.Claims, bool)
}

// Auditor описывает запись события в журнал аудита.
type Auditor interface {
	Record(action, subject, remoteAddr string)
}

// SessionMiddleware возвращает HTTP middleware, который проверяет
// сессионную cookie запроса.
func SessionMiddleware(verifier Verifier, audit Auditor, cookieOpts sessioncookie.Options, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token, ok := sessioncookie.Extract(r)
			if !ok {
				log.Warn("session cookie is missing")
				rejectSession(w, r, cookieOpts)
				return
			}

			claims, ok := verifier.Verify(token)
			if !ok {
				// Причина отказа уже в логе верификатора.
				metrics.SessionChecks.WithLabelValues("rejected").Inc()
				audit.Record(models.AuditActionSessionRejected, "", r.RemoteAddr)
				rejectSession(w, r, cookieOpts)
				return
			}
			metrics.SessionChecks.WithLabelValues("accepted").Inc()

			subject, _ := claims["sub"].(string)
			ctx := context.WithValue(r.Context(), Subject, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// rejectSession отвечает единообразным 401 и сбрасывает сессионную cookie.
func rejectSession(w http.ResponseWriter, r *http.Request, cookieOpts sessioncookie.Options) {
	w.Header().Set("Set-Cookie", sessioncookie.Clear(cookieOpts))
	w.WriteHeader(http.StatusUnauthorized)
	render.JSON(w, r, response.Error("unauthorized"))
}
