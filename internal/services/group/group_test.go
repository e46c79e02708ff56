package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifelse01-debug/subpool-admin/internal/models"
	"github.com/ifelse01-debug/subpool-admin/internal/storage"
)

// fakeRepo — key/value хранилище в памяти для тестов сервиса.
type fakeRepo struct {
	data map[string][]byte
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{data: make(map[string][]byte)}
}

func (r *fakeRepo) Get(_ context.Context, key string) ([]byte, error) {
	value, ok := r.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return value, nil
}

func (r *fakeRepo) Set(_ context.Context, key string, value []byte) error {
	r.data[key] = value
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, key string) (int, error) {
	if _, ok := r.data[key]; !ok {
		return 0, nil
	}
	delete(r.data, key)
	return 1, nil
}

func (r *fakeRepo) ListKeys(_ context.Context, prefix string) ([]string, error) {
	var keys []string
	for key := range r.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// fakeCache — кэш в памяти, считающий попадания.
type fakeCache struct {
	data map[string][]byte
	hits int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(key string, result any) (bool, error) {
	value, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(value, result); err != nil {
		return false, err
	}
	c.hits++
	return true, nil
}

func (c *fakeCache) Set(key string, value any, _ time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = data
	return nil
}

func (c *fakeCache) Invalidate(key string) error {
	delete(c.data, key)
	return nil
}

func newTestService() (*GroupService, *fakeRepo, *fakeCache) {
	repo := newFakeRepo()
	cache := newFakeCache()
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	return NewGroupService(repo, cache, log), repo, cache
}

func TestGroupService_CreateAndRead(t *testing.T) {
	service, repo, cache := newTestService()
	ctx := context.Background()

	group := models.Group{
		Name:        "news",
		Description: "news feeds",
		Sources:     []string{"https://example.com/feed"},
		Filters:     []string{"^#"},
	}
	require.NoError(t, service.Create(ctx, group))
	assert.Contains(t, repo.data, "group:news")

	got, err := service.Read(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, "news", got.Name)
	assert.Equal(t, []string{"https://example.com/feed"}, got.Sources)
	assert.False(t, got.UpdatedAt.IsZero())

	// Повторное чтение обслуживается кэшем.
	_, err = service.Read(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
}

func TestGroupService_Create_Duplicate(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, models.Group{Name: "news"}))

	err := service.Create(ctx, models.Group{Name: "news"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGroupExists)
}

func TestGroupService_Create_InvalidFilter(t *testing.T) {
	service, repo, _ := newTestService()
	ctx := context.Background()

	err := service.Create(ctx, models.Group{Name: "news", Filters: []string{"(unclosed"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilter)
	assert.Empty(t, repo.data)
}

func TestGroupService_Update(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, models.Group{Name: "news", Description: "old"}))
	require.NoError(t, service.Update(ctx, models.Group{Name: "news", Description: "new"}))

	got, err := service.Read(ctx, "news")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Description)

	err = service.Update(ctx, models.Group{Name: "missing"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGroupService_Remove(t *testing.T) {
	service, repo, cache := newTestService()
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, models.Group{Name: "news"}))
	require.NoError(t, service.Remove(ctx, "news"))
	assert.Empty(t, repo.data)
	assert.Empty(t, cache.data)

	err := service.Remove(ctx, "news")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestGroupService_List(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, models.Group{Name: "beta"}))
	require.NoError(t, service.Create(ctx, models.Group{Name: "alpha"}))

	names, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, names)
}

func TestGroupService_FilterPayload(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, models.Group{
		Name:    "hosts",
		Filters: []string{"^#", "tracker"},
	}))

	filtered, err := service.FilterPayload(ctx, "hosts", "# comment\nhost-a\ntracker.example.com\nhost-b\n")
	require.NoError(t, err)
	assert.Equal(t, "host-a\nhost-b\n", filtered)

	_, err = service.FilterPayload(ctx, "missing", "payload")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
