// Package preview реализует HTTP-обработчик прогонки полезной нагрузки
// через фильтры группы без сохранения результата.
package preview

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
	groupservice "github.com/ifelse01-debug/subpool-admin/internal/services/group"
)

// Request — структура входных данных для прогонки фильтров.
type Request struct {
	Payload string `json:"payload" validate:"required"`
}

// Service описывает интерфейс бизнес-логики фильтрации полезной нагрузки.
type Service interface {
	FilterPayload(ctx context.Context, name, payload string) (string, error)
}

// Handler обрабатывает запросы на прогонку фильтров группы.
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
	const op = "handlers.group.preview"

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

	filtered, err := h.service.FilterPayload(r.Context(), name, req.Payload)
	if errors.Is(err, groupservice.ErrGroupNotFound) {
		log.Warn("group not found", slog.String("name", name))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("group not found"))
		return
	}
	if err != nil {
		log.Error("failed to filter payload", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not filter payload"))
		return
	}

	log.Info("payload filtered", slog.String("name", name))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"payload": filtered,
	}))
}
