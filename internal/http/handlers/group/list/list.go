// Package list реализует HTTP-обработчик получения списка имен групп.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/ifelse01-debug/subpool-admin/internal/http/response"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики списка групп.
type Service interface {
	List(ctx context.Context) ([]string, error)
}

// Handler обрабатывает запросы на получение списка групп.
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
	const op = "handlers.group.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	names, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list groups", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list groups"))
		return
	}

	log.Info("groups listed", slog.Int("count", len(names)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"groups": names,
	}))
}
