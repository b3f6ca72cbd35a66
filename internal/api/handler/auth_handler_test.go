package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"adaptrack/internal/api/handler"
	"adaptrack/internal/api/models"
	"adaptrack/internal/api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(username, password, email string) (*models.User, error) {
	args := m.Called(username, password, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(username, password string) (string, string, *models.User, error) {
	args := m.Called(username, password)
	if args.Get(2) == nil {
		return "", "", nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(refreshToken string) (string, error) {
	args := m.Called(refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *MockAuthService) AccessTokenTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

func setupAuthRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewAuthHandler(svc)
	h.RegisterRoutes(r.Group("/api/auth"))
	return r
}

func TestLogin_ExpiresInFollowsConfiguredTTL(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", "alice", "s3cret-pass").
		Return("access-token", "refresh-token", &models.User{ID: "u1", Username: "alice", Role: "user"}, nil)
	svc.On("AccessTokenTTL").Return(30 * time.Minute)
	r := setupAuthRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username": "alice", "password": "s3cret-pass"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1800), body["expires_in"])
	assert.Equal(t, "access-token", body["access_token"])
}

func TestRefreshToken_ExpiresInFollowsConfiguredTTL(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("RefreshAccessToken", "refresh-token").Return("new-access-token", nil)
	svc.On("AccessTokenTTL").Return(30 * time.Minute)
	r := setupAuthRouter(svc)

	req, _ := http.NewRequest(http.MethodPost, "/api/auth/refresh",
		strings.NewReader(`{"refresh_token": "refresh-token"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1800), body["expires_in"])
	assert.Equal(t, "Bearer", body["token_type"])
}
