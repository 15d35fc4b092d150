package mocks

import (
	"context"
	"errors"

	"github.com/vibra-app/vibra/internal/domain/entity"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// MockSessionUsecase is a mock implementation of the session usecase
type MockSessionUsecase struct {
	// Control mock behavior
	ShouldFailLogin         bool
	ShouldFailWalletLogin   bool
	ShouldFailRegister      bool
	ShouldFailLogout        bool
	ShouldFailCurrentUser   bool
	ShouldFailUpdateProfile bool

	// Return values
	MockUser        entity.User
	MockSessionID   string
	MockAccessToken string

	// Recorded calls
	LoggedOutSessions []string
}

// Ensure MockSessionUsecase implements the interface the handlers expect
var _ usecasecontract.ISessionUseCase = (*MockSessionUsecase)(nil)

func NewMockSessionUsecase() *MockSessionUsecase {
	return &MockSessionUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			Username: "testuser",
			Email:    "test@example.com",
			Role:     entity.UserRoleUser,
		},
		MockSessionID:   "mock-session-id",
		MockAccessToken: "mock_access_token",
	}
}

func (m *MockSessionUsecase) result() *usecasecontract.SessionResult {
	user := m.MockUser
	return &usecasecontract.SessionResult{
		User:        &user,
		SessionID:   m.MockSessionID,
		AccessToken: m.MockAccessToken,
	}
}

func (m *MockSessionUsecase) Login(ctx context.Context, email, password string) (*usecasecontract.SessionResult, error) {
	if m.ShouldFailLogin {
		return nil, errors.New("login failed")
	}
	return m.result(), nil
}

func (m *MockSessionUsecase) LoginWithWallet(ctx context.Context, address string) (*usecasecontract.SessionResult, error) {
	if m.ShouldFailWalletLogin {
		return nil, errors.New("wallet login failed")
	}
	return m.result(), nil
}

func (m *MockSessionUsecase) Register(ctx context.Context, email, password, username string) (*usecasecontract.SessionResult, error) {
	if m.ShouldFailRegister {
		return nil, errors.New("register failed")
	}
	return m.result(), nil
}

func (m *MockSessionUsecase) Logout(ctx context.Context, sessionID string) error {
	if m.ShouldFailLogout {
		return errors.New("logout failed")
	}
	m.LoggedOutSessions = append(m.LoggedOutSessions, sessionID)
	return nil
}

func (m *MockSessionUsecase) CurrentUser(ctx context.Context, sessionID string) (*entity.User, error) {
	if m.ShouldFailCurrentUser {
		return nil, errors.New("session not found")
	}
	user := m.MockUser
	return &user, nil
}

func (m *MockSessionUsecase) UpdateProfile(ctx context.Context, sessionID string, updates map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, errors.New("update failed")
	}
	user := m.MockUser
	if v, ok := updates["username"].(string); ok {
		user.Username = v
	}
	if v, ok := updates["bio"].(string); ok {
		user.Bio = &v
	}
	return &user, nil
}
