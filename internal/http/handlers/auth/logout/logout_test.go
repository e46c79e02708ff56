package logout

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ifelse01-debug/subpool-admin/internal/http/middlewarectx"
	"github.com/ifelse01-debug/subpool-admin/internal/http/sessioncookie"
)

type auditorStub struct {
	actions  []string
	subjects []string
}

func (a *auditorStub) Record(action, subject, _ string) {
	a.actions = append(a.actions, action)
	a.subjects = append(a.subjects, subject)
}

func TestLogoutHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	audit := &auditorStub{}

	handler := New(logger, audit, sessioncookie.Options{})

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req = req.WithContext(context.WithValue(req.Context(), middlewarectx.Subject, "admin"))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"status":"OK"}`)

	setCookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, sessioncookie.Name+"=;"))
	assert.Contains(t, setCookie, "Max-Age=0")
	assert.Contains(t, setCookie, "Path=/admin")

	assert.Equal(t, []string{"logout"}, audit.actions)
	assert.Equal(t, []string{"admin"}, audit.subjects)
}
