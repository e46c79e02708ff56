// Package update реализует HTTP-обработчик обновления группы подписок.
//
// Имя группы берется из URL и имеет приоритет над телом запроса.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ifelse01-debug/subpool-admin/internal/http/response"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
	groupservice "github.com/ifelse01-debug/subpool-admin/internal/services/group"
)

// Service описывает интерфейс бизнес-логики обновления группы.
type Service interface {
	Update(ctx context.Context, group models.Group) error
}

// Handler обрабатывает запросы на обновление группы.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.group.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var group models.Group
	if err := json.NewDecoder(r.Body).Decode(&group); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	group.Name = chi.URLParam(r, "name")

	if err := h.validate.Struct(group); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	err := h.service.Update(r.Context(), group)
	switch {
	case errors.Is(err, groupservice.ErrGroupNotFound):
		log.Warn("group not found", slog.String("name", group.Name))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("group not found"))
		return
	case errors.Is(err, groupservice.ErrInvalidFilter):
		log.Warn("invalid filter pattern", slog.String("name", group.Name))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid filter pattern"))
		return
	case err != nil:
		log.Error("failed to update group", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update group"))
		return
	}

	log.Info("group updated", slog.String("name", group.Name))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"name": group.Name,
	}))
}
