// Package create реализует HTTP-обработчик создания группы подписок.
//
// Handler декодирует тело запроса, валидирует его и передает группу
// бизнес-логике; занятое имя и некомпилируемые фильтры превращаются
// в соответствующие HTTP-статусы.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/ifelse01-debug/subpool-admin/internal/http/response"
	"github.com/ifelse01-debug/subpool-admin/internal/lib/sl"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
	groupservice "github.com/ifelse01-debug/subpool-admin/internal/services/group"
)

// Service описывает интерфейс бизнес-логики создания группы.
type Service interface {
	Create(ctx context.Context, group models.Group) error
}

// Handler обрабатывает запросы на создание группы.
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
	const op = "handlers.group.create"

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

	if err := h.validate.Struct(group); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	err := h.service.Create(r.Context(), group)
	switch {
	case errors.Is(err, groupservice.ErrGroupExists):
		log.Warn("group already exists", slog.String("name", group.Name))
		w.WriteHeader(http.StatusConflict)
		render.JSON(w, r, response.Error("group already exists"))
		return
	case errors.Is(err, groupservice.ErrInvalidFilter):
		log.Warn("invalid filter pattern", slog.String("name", group.Name))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("invalid filter pattern"))
		return
	case err != nil:
		log.Error("failed to create group", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create group"))
		return
	}

	log.Info("group created", slog.String("name", group.Name))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"name": group.Name,
	}))
}
