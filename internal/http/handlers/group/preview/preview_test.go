package preview

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	groupservice "github.com/ifelse01-debug/subpool-admin/internal/services/group"
)

// MockService реализует интерфейс preview.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) FilterPayload(ctx context.Context, name, payload string) (string, error) {
	args := m.Called(ctx, name, payload)
	return args.String(0), args.Error(1)
}

func TestPreviewHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		groupName      string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "успешная прогонка фильтров",
			groupName: "hosts",
			body:      `{"payload":"# comment\nhost-a\n"}`,
			setupMock: func(m *MockService) {
				m.On("FilterPayload", mock.Anything, "hosts", "# comment\nhost-a\n").
					Return("host-a\n", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"payload":"host-a\n"`,
		},
		{
			name:      "группа не найдена",
			groupName: "missing",
			body:      `{"payload":"host-a\n"}`,
			setupMock: func(m *MockService) {
				m.On("FilterPayload", mock.Anything, "missing", "host-a\n").
					Return("", groupservice.ErrGroupNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"group not found"}`,
		},
		{
			name:           "пустая полезная нагрузка не проходит валидацию",
			groupName:      "hosts",
			body:           `{"payload":""}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Payload is a required field`,
		},
		{
			name:           "некорректное тело запроса",
			groupName:      "hosts",
			body:           `{not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/admin/groups/"+tt.groupName+"/preview",
				strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("name", tt.groupName)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
