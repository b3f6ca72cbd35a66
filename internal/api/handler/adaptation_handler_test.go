package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"adaptrack/internal/api/dto"
	"adaptrack/internal/api/handler"
	"adaptrack/internal/api/models"
	"adaptrack/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCK SERVICE ---

type MockAdaptationService struct {
	mock.Mock
}

func (m *MockAdaptationService) UpdateAdaptation(ctx context.Context, id string, in dto.UpdateAdaptationDTO) (any, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0), args.Error(1)
}

// --- SETUP ---

func mockClaimsMiddleware(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", &service.Claims{UserID: "test-user-id", Username: "tester", Role: role})
		c.Set("userID", "test-user-id")
		c.Set("role", role)
		c.Next()
	}
}

func setupAdaptationRouter(svc *MockAdaptationService, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAdaptationHandler(svc)

	rg := r.Group("/api/adaptation")
	if role != "" {
		rg.Use(mockClaimsMiddleware(role))
	}
	h.RegisterRoutes(rg)
	return r
}

func putJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- TESTS ---

func TestAdaptationUpdate_SeasonOK(t *testing.T) {
	svc := new(MockAdaptationService)
	season := &models.AnimeSeason{ID: "s1", SeasonNumber: 2, Episodes: 24}
	svc.On("UpdateAdaptation", mock.Anything, "s1", mock.Anything).Return(season, nil)
	r := setupAdaptationRouter(svc, "admin")

	w := putJSON(t, r, "/api/adaptation/s1", `{"type": "season", "episodes": 24}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.AnimeSeason
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, 24, got.Episodes)
	svc.AssertExpectations(t)
}

func TestAdaptationUpdate_UnknownTypeIs400(t *testing.T) {
	svc := new(MockAdaptationService)
	svc.On("UpdateAdaptation", mock.Anything, "a1", mock.Anything).
		Return(nil, &service.ValidationError{
			Reason:      "unknown type",
			Received:    "movie",
			ValidValues: []string{"season", "anime"},
		})
	r := setupAdaptationRouter(svc, "admin")

	w := putJSON(t, r, "/api/adaptation/a1", `{"type": "movie"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unknown type", body["error"])
	assert.Equal(t, "movie", body["received"])
	assert.Equal(t, []any{"season", "anime"}, body["validValues"])
}

func TestAdaptationUpdate_NotFoundIs404(t *testing.T) {
	svc := new(MockAdaptationService)
	svc.On("UpdateAdaptation", mock.Anything, "unknown-id", mock.Anything).
		Return(nil, &service.NotFoundError{Kind: "anime", ID: "unknown-id"})
	r := setupAdaptationRouter(svc, "admin")

	w := putJSON(t, r, "/api/adaptation/unknown-id", `{"type": "anime", "episodes": 1}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unknown-id", body["requestedId"])
	assert.Equal(t, "anime", body["type"])
}

func TestAdaptationUpdate_NonAdminIs403(t *testing.T) {
	svc := new(MockAdaptationService)
	r := setupAdaptationRouter(svc, "user")

	w := putJSON(t, r, "/api/adaptation/a1", `{"type": "anime"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "UpdateAdaptation", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdaptationUpdate_MalformedBodyIs400(t *testing.T) {
	svc := new(MockAdaptationService)
	r := setupAdaptationRouter(svc, "admin")

	w := putJSON(t, r, "/api/adaptation/a1", `{"type": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "UpdateAdaptation", mock.Anything, mock.Anything, mock.Anything)
}
