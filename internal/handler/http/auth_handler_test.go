package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	handler "github.com/vibra-app/vibra/internal/handler/http"
	dto "github.com/vibra-app/vibra/internal/handler/http/dto"
	mocks "github.com/vibra-app/vibra/internal/handler/http/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupAuthRouter(h handler.AuthHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	r.POST("/login", h.Login)
	r.POST("/wallet-login", h.WalletLogin)
	r.POST("/register", h.Register)
	r.POST("/logout", withSession("mock-session-id"), h.Logout)
	r.GET("/me", withSession("mock-session-id"), h.GetCurrentUser)
	r.PUT("/me", withSession("mock-session-id"), h.UpdateProfile)
	return r
}

// withSession stands in for the auth middleware in handler tests.
func withSession(sessionID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("sessionID", sessionID)
		c.Set("userID", "mock-user-id")
		c.Next()
	}
}

func doJSON(r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := doJSON(r, "POST", "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123!",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestLoginHandler_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	mockUsecase.ShouldFailLogin = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := doJSON(r, "POST", "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginHandler_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	// Missing password triggers binding validation
	w := doJSON(r, "POST", "/login", map[string]string{"email": "test@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Password' failed on the 'required' tag")
}

func TestWalletLoginHandler(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := doJSON(r, "POST", "/wallet-login", dto.WalletLoginRequest{
		Address: "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestWalletLoginHandler_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	mockUsecase.ShouldFailWalletLogin = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := doJSON(r, "POST", "/wallet-login", dto.WalletLoginRequest{Address: "bad"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid wallet address")
}

func TestRegisterHandler(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := doJSON(r, "POST", "/register", dto.RegisterRequest{
		Email:    "new@example.com",
		Password: "Password123!",
		Username: "newcomer",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
}

func TestLogoutHandler(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := doJSON(r, "POST", "/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")
	assert.Equal(t, []string{"mock-session-id"}, mockUsecase.LoggedOutSessions)
}

func TestGetCurrentUserHandler(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := doJSON(r, "GET", "/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestGetCurrentUserHandler_SessionGone(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	mockUsecase.ShouldFailCurrentUser = true
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	w := doJSON(r, "GET", "/me", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileHandler(t *testing.T) {
	mockUsecase := mocks.NewMockSessionUsecase()
	h := handler.NewAuthHandler(mockUsecase)
	r := setupAuthRouter(h)

	username := "renamed"
	w := doJSON(r, "PUT", "/me", dto.UpdateProfileRequest{Username: &username})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "renamed")
}
