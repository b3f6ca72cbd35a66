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

func intPtr(i int) *int { return &i }

// --- MOCK SERVICE ---

type MockMangaService struct {
	mock.Mock
}

func (m *MockMangaService) GetWork(ctx context.Context, id string) (*models.MangaWork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaWork), args.Error(1)
}

func (m *MockMangaService) ListByLicense(ctx context.Context, licenseID string) ([]models.MangaWork, error) {
	args := m.Called(ctx, licenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MangaWork), args.Error(1)
}

func (m *MockMangaService) CreateWork(ctx context.Context, in dto.CreateMangaWorkDTO) (*models.MangaWork, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaWork), args.Error(1)
}

func (m *MockMangaService) UpdateWork(ctx context.Context, id string, in dto.UpdateMangaWorkDTO) (*models.MangaWork, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaWork), args.Error(1)
}

func (m *MockMangaService) DeleteWork(ctx context.Context, id string) (*models.MangaWork, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaWork), args.Error(1)
}

func (m *MockMangaService) GetPart(ctx context.Context, id string) (*models.MangaPart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaPart), args.Error(1)
}

func (m *MockMangaService) CreatePart(ctx context.Context, in dto.CreateMangaPartDTO) (*models.MangaPart, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaPart), args.Error(1)
}

func (m *MockMangaService) UpdatePart(ctx context.Context, id string, in dto.UpdateMangaPartDTO) (*models.MangaPart, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaPart), args.Error(1)
}

func (m *MockMangaService) DeletePart(ctx context.Context, id string) (*models.MangaPart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaPart), args.Error(1)
}

func (m *MockMangaService) CreatePartLink(ctx context.Context, in dto.CreateMangaPartToAnimeDTO) (*models.MangaPartToAnime, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MangaPartToAnime), args.Error(1)
}

// --- SETUP ---

func setupMangaRouter(svc *MockMangaService, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewMangaHandler(svc)

	rg := r.Group("/api/manga")
	if role != "" {
		rg.Use(mockClaimsMiddleware(role))
	}
	h.RegisterRoutes(rg)
	return r
}

// --- TESTS ---

func TestMangaGetWork(t *testing.T) {
	svc := new(MockMangaService)
	svc.On("GetWork", mock.Anything, "m1").
		Return(&models.MangaWork{ID: "m1", Title: "Berserk"}, nil)
	r := setupMangaRouter(svc, "")

	req, _ := http.NewRequest(http.MethodGet, "/api/manga/m1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.MangaWork
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Berserk", got.Title)
}

func TestMangaGetWork_NotFound(t *testing.T) {
	svc := new(MockMangaService)
	svc.On("GetWork", mock.Anything, "unknown-id").
		Return(nil, &service.NotFoundError{Kind: "manga", ID: "unknown-id"})
	r := setupMangaRouter(svc, "")

	req, _ := http.NewRequest(http.MethodGet, "/api/manga/unknown-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unknown-id", body["requestedId"])
	assert.Equal(t, "manga", body["type"])
}

func TestMangaCreatePart(t *testing.T) {
	svc := new(MockMangaService)
	created := &models.MangaPart{
		ID:          "p1",
		MangaID:     "m1",
		Title:       "Golden Age",
		StartVolume: intPtr(4),
		EndVolume:   intPtr(14),
		Volumes:     intPtr(11),
	}
	svc.On("CreatePart", mock.Anything, mock.MatchedBy(func(in dto.CreateMangaPartDTO) bool {
		return in.MangaID == "m1" && in.StartVolume.Provided() && in.StartVolume.Value == 4
	})).Return(created, nil)
	r := setupMangaRouter(svc, "admin")

	body := `{"mangaId": "m1", "licenseId": "l1", "title": "Golden Age", "startVolume": 4, "endVolume": 14}`
	req, _ := http.NewRequest(http.MethodPost, "/api/manga/part", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.MangaPart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 11, *got.Volumes)
	svc.AssertExpectations(t)
}

func TestMangaUpdatePart_ValidationErrorShape(t *testing.T) {
	svc := new(MockMangaService)
	svc.On("UpdatePart", mock.Anything, "p1", mock.Anything).
		Return(nil, &service.ValidationError{
			Reason:      "invalid status",
			Received:    "ongoing",
			ValidValues: models.PublicationStatuses,
		})
	r := setupMangaRouter(svc, "admin")

	req, _ := http.NewRequest(http.MethodPut, "/api/manga/part/p1",
		bytes.NewBufferString(`{"status": "ongoing"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "invalid status", body["error"])
	assert.Equal(t, "ongoing", body["received"])
	assert.Len(t, body["validValues"], len(models.PublicationStatuses))
}

func TestMangaDeleteWork_ReturnsDeletedEntity(t *testing.T) {
	svc := new(MockMangaService)
	svc.On("DeleteWork", mock.Anything, "m1").
		Return(&models.MangaWork{ID: "m1", Title: "Berserk"}, nil)
	r := setupMangaRouter(svc, "admin")

	req, _ := http.NewRequest(http.MethodDelete, "/api/manga/m1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.MangaWork
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "m1", got.ID)
}

func TestMangaMutationsRequireAdmin(t *testing.T) {
	svc := new(MockMangaService)
	r := setupMangaRouter(svc, "user")

	req, _ := http.NewRequest(http.MethodDelete, "/api/manga/m1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	svc.AssertNotCalled(t, "DeleteWork", mock.Anything, mock.Anything)
}
