// Package remove реализует HTTP-обработчик удаления группы подписок.
package remove

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
	groupservice "github.com/ifelse01-debug/subpool-admin/internal/services/group"
)

// Service описывает интерфейс бизнес-логики удаления группы.
type Service interface {
	Remove(ctx context.Context, name string) error
}

// Handler обрабатывает запросы на удаление группы.
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
	const op = "handlers.group.remove"

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

	err := h.service.Remove(r.Context(), name)
	if errors.Is(err, groupservice.ErrGroupNotFound) {
		log.Warn("group not found", slog.String("name", name))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("group not found"))
		return
	}
	if err != nil {
		log.Error("failed to remove group", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove group"))
		return
	}

	log.Info("group removed", slog.String("name", name))
	render.JSON(w, r, response.OK())
}
