// Package read реализует HTTP-обработчик чтения группы подписок по имени.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ifelse01-debug/subpool-admin/internal/http/response"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
	groupservice "github.com/ifelse01-debug/subpool-admin/internal/services/group"
)

// Service описывает интерфейс бизнес-логики чтения группы.
type Service interface {
	Read(ctx context.Context, name string) (*models.Group, error)
}

// Handler обрабатывает запросы на чтение группы по имени.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.group.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	name := chi.URLParam(r, "name")
	if name == "" {
		log.Error("missing group name in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing group name"))
		return
	}

	group, err := h.service.Read(r.Context(), name)
	if errors.Is(err, groupservice.ErrGroupNotFound) {
		log.Warn("group not found", slog.String("name", name))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("group not found"))
		return
	}
	if err != nil {
		log.Error("failed to read group", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read group"))
		return
	}

	log.Info("group read", slog.String("name", name))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"group": group,
	}))
}
