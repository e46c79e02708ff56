// Package services содержит бизнес-логику управления группами подписок
// с кэшированием поверх key/value хранилища.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ifelse01-debug/subpool-admin/internal/lib/linefilter"
	"github.com/ifelse01-debug/subpool-admin/internal/models"
	"github.com/ifelse01-debug/subpool-admin/internal/storage"
)

// Ошибки уровня бизнес-логики групп.
var (
	// ErrGroupExists возвращается при создании группы с занятым именем.
	ErrGroupExists = errors.New("group already exists")
	// ErrGroupNotFound возвращается, когда группы нет в хранилище.
	ErrGroupNotFound = errors.New("group not found")
	// ErrInvalidFilter возвращается при некомпилируемом шаблоне фильтра.
	ErrInvalidFilter = errors.New("invalid filter pattern")
)

const keyPrefix = "group:"

const cacheTTL = time.Hour

// GroupRepository определяет key/value контракт внешнего хранилища.
type GroupRepository interface {
	// Get возвращает значение по ключу или storage.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set сохраняет значение по ключу, перезаписывая существующее.
	Set(ctx context.Context, key string, value []byte) error
	// Delete удаляет значение и возвращает число удаленных записей.
	Delete(ctx context.Context, key string) (int, error)
	// ListKeys возвращает ключи с заданным префиксом.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// GroupService реализует CRUD групп подписок и построчную фильтрацию
// их полезной нагрузки.
type GroupService struct {
	repo  GroupRepository
	cache Cache
	log   *slog.Logger
}

// NewGroupService создает новый экземпляр GroupService.
func NewGroupService(repo GroupRepository, cache Cache, log *slog.Logger) *GroupService {
	return &GroupService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func groupKey(name string) string {
	return keyPrefix + name
}

// Create сохраняет новую группу. Имя должно быть свободно,
// шаблоны фильтров — компилируемы.
func (s *GroupService) Create(ctx context.Context, group models.Group) error {
	const op = "services.group.Create"

	if _, err := linefilter.Compile(group.Filters); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidFilter, err)
	}

	if _, err := s.repo.Get(ctx, groupKey(group.Name)); err == nil {
		return fmt.Errorf("%s: %w", op, ErrGroupExists)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.store(ctx, op, group)
}

// Update перезаписывает существующую группу.
func (s *GroupService) Update(ctx context.Context, group models.Group) error {
	const op = "services.group.Update"

	if _, err := linefilter.Compile(group.Filters); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidFilter, err)
	}

	if _, err := s.repo.Get(ctx, groupKey(group.Name)); errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrGroupNotFound)
	} else if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return s.store(ctx, op, group)
}

func (s *GroupService) store(ctx context.Context, op string, group models.Group) error {
	group.UpdatedAt = time.Now().UTC()

	value, err := json.Marshal(group)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.repo.Set(ctx, groupKey(group.Name), value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("stored subscription group", slog.String("name", group.Name))

	if err := s.cache.Set(groupKey(group.Name), group, cacheTTL); err != nil {
		s.log.Warn("failed to cache group", slog.String("name", group.Name), slog.Any("err", err))
	}
	return nil
}

// Read возвращает группу по имени, используя кэш или хранилище.
func (s *GroupService) Read(ctx context.Context, name string) (*models.Group, error) {
	const op = "services.group.Read"

	var cached *models.Group
	found, err := s.cache.Get(groupKey(name), &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("name", name), slog.Any("err", err))
	}
	if found && cached != nil {
		return cached, nil
	}

	value, err := s.repo.Get(ctx, groupKey(name))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrGroupNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var group models.Group
	if err := json.Unmarshal(value, &group); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(groupKey(name), group, cacheTTL); err != nil {
		s.log.Warn("failed to cache group", slog.String("name", name), slog.Any("err", err))
	}
	return &group, nil
}

// Remove удаляет группу по имени и инвалидирует кэш.
func (s *GroupService) Remove(ctx context.Context, name string) error {
	const op = "services.group.Remove"

	if err := s.cache.Invalidate(groupKey(name)); err != nil {
		s.log.Warn("failed to invalidate group cache", slog.String("name", name), slog.Any("err", err))
	}

	count, err := s.repo.Delete(ctx, groupKey(name))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, ErrGroupNotFound)
	}
	return nil
}

// List возвращает отсортированные имена всех групп.
func (s *GroupService) List(ctx context.Context) ([]string, error) {
	const op = "services.group.List"

	keys, err := s.repo.ListKeys(ctx, keyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, strings.TrimPrefix(key, keyPrefix))
	}
	return names, nil
}

// FilterPayload применяет фильтры группы к полезной нагрузке подписки
// и возвращает отфильтрованный текст.
func (s *GroupService) FilterPayload(ctx context.Context, name, payload string) (string, error) {
	const op = "services.group.FilterPayload"

	group, err := s.Read(ctx, name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	filter, err := linefilter.Compile(group.Filters)
	if err != nil {
		// Фильтры проверяются при сохранении, сюда попадает только
		// запись, испорченная в обход сервиса.
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return filter.Apply(payload), nil
}
