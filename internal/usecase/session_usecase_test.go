package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibra-app/vibra/internal/infrastructure/config"
	"github.com/vibra-app/vibra/internal/infrastructure/idgen"
	"github.com/vibra-app/vibra/internal/infrastructure/jwt"
	"github.com/vibra-app/vibra/internal/infrastructure/logger"
	"github.com/vibra-app/vibra/internal/infrastructure/memstore"
	"github.com/vibra-app/vibra/internal/infrastructure/sessionstore"
	"github.com/vibra-app/vibra/internal/infrastructure/validator"
	"github.com/vibra-app/vibra/internal/usecase"
)

func newSessionUsecase(t *testing.T) *usecase.SessionUsecase {
	t.Helper()
	store := memstore.NewStore(memstore.Seed())
	jwtService := jwt.NewJWTService(jwt.NewJWTManager("test-secret", time.Hour))
	return usecase.NewSessionUsecase(
		memstore.NewUserRepository(store),
		sessionstore.NewMemoryStore(),
		jwtService,
		logger.NewStdLogger(),
		config.NewConfig(),
		validator.NewValidator(),
		idgen.NewUUIDGenerator(),
		idgen.NewTimestampGenerator(),
	)
}

func TestLogin_SeededEmailAnyPassword(t *testing.T) {
	uc := newSessionUsecase(t)

	result, err := uc.Login(context.Background(), "queen@vibra.app", "whatever")
	require.NoError(t, err)
	assert.Equal(t, "cryptoqueen", result.User.Username)
	assert.NotEmpty(t, result.SessionID)
	assert.NotEmpty(t, result.AccessToken)

	// a second login with a different password also succeeds
	again, err := uc.Login(context.Background(), "queen@vibra.app", "something-else")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)
	assert.NotEqual(t, result.SessionID, again.SessionID)
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	uc := newSessionUsecase(t)

	result, err := uc.Login(context.Background(), "QUEEN@Vibra.App", "pw")
	require.NoError(t, err)
	assert.Equal(t, "cryptoqueen", result.User.Username)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := newSessionUsecase(t)

	_, err := uc.Login(context.Background(), "nobody@vibra.app", "pw")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLoginWithWallet_KnownAddressResolvesSameUser(t *testing.T) {
	uc := newSessionUsecase(t)
	address := "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU"

	first, err := uc.LoginWithWallet(context.Background(), address)
	require.NoError(t, err)
	second, err := uc.LoginWithWallet(context.Background(), address)
	require.NoError(t, err)

	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Equal(t, "cryptoqueen", first.User.Username)
}

func TestLoginWithWallet_UnknownAddressSynthesizesDistinctUsers(t *testing.T) {
	uc := newSessionUsecase(t)
	address := "9aBcDeFgHiJkLmNoPqRsTuVwXyZ123456789AbCdEf"

	first, err := uc.LoginWithWallet(context.Background(), address)
	require.NoError(t, err)
	second, err := uc.LoginWithWallet(context.Background(), address)
	require.NoError(t, err)

	// unknown addresses are never persisted, so each call mints a new
	// identity
	assert.NotEqual(t, first.User.ID, second.User.ID)
	assert.Equal(t, "user_AbCdEf", first.User.Username)
	require.NotNil(t, first.User.WalletAddress)
	assert.Equal(t, address, *first.User.WalletAddress)
	assert.True(t, first.User.WalletBalance.IsZero())
}

func TestLoginWithWallet_EmptyAddress(t *testing.T) {
	uc := newSessionUsecase(t)

	_, err := uc.LoginWithWallet(context.Background(), "   ")
	assert.Error(t, err)
}

func TestRegister_NewAccount(t *testing.T) {
	uc := newSessionUsecase(t)

	result, err := uc.Register(context.Background(), "new@vibra.app", "pw123456", "newcomer")
	require.NoError(t, err)
	assert.Equal(t, "newcomer", result.User.Username)
	assert.True(t, result.User.TotalEarned.IsZero())
	assert.NotEmpty(t, result.User.Avatar)

	// the account is persisted, so logging back in finds it
	again, err := uc.Login(context.Background(), "new@vibra.app", "other-pw")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, again.User.ID)
}

func TestRegister_ConflictsAreCaseInsensitive(t *testing.T) {
	uc := newSessionUsecase(t)

	_, err := uc.Register(context.Background(), "QUEEN@vibra.app", "pw123456", "someoneelse")
	assert.ErrorIs(t, err, usecase.ErrEmailTaken)

	_, err = uc.Register(context.Background(), "fresh@vibra.app", "pw123456", "CryptoQueen")
	assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	uc := newSessionUsecase(t)

	_, err := uc.Register(context.Background(), "not-an-email", "pw123456", "someone")
	assert.Error(t, err)

	_, err = uc.Register(context.Background(), "ok@vibra.app", "pw123456", "ab")
	assert.Error(t, err)
}

func TestLogoutEndsSession(t *testing.T) {
	uc := newSessionUsecase(t)

	result, err := uc.Login(context.Background(), "queen@vibra.app", "pw")
	require.NoError(t, err)

	_, err = uc.CurrentUser(context.Background(), result.SessionID)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), result.SessionID))

	_, err = uc.CurrentUser(context.Background(), result.SessionID)
	assert.ErrorIs(t, err, usecase.ErrNotAuthenticated)
}

func TestLogoutTearsDownFeedState(t *testing.T) {
	uc := newSessionUsecase(t)
	registry := &recordingRegistry{}
	uc.SetFeedRegistry(registry)

	result, err := uc.Login(context.Background(), "queen@vibra.app", "pw")
	require.NoError(t, err)
	require.NoError(t, uc.Logout(context.Background(), result.SessionID))

	assert.Equal(t, []string{result.SessionID}, registry.tornDown)
}

func TestUpdateProfile(t *testing.T) {
	uc := newSessionUsecase(t)

	result, err := uc.Login(context.Background(), "queen@vibra.app", "pw")
	require.NoError(t, err)

	user, err := uc.UpdateProfile(context.Background(), result.SessionID, map[string]interface{}{
		"username": "queen_v2",
		"bio":      "still here",
	})
	require.NoError(t, err)
	assert.Equal(t, "queen_v2", user.Username)
	require.NotNil(t, user.Bio)
	assert.Equal(t, "still here", *user.Bio)

	// the session snapshot reflects the edit
	current, err := uc.CurrentUser(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "queen_v2", current.Username)
}

func TestUpdateProfile_UsernameConflict(t *testing.T) {
	uc := newSessionUsecase(t)

	result, err := uc.Login(context.Background(), "queen@vibra.app", "pw")
	require.NoError(t, err)

	_, err = uc.UpdateProfile(context.Background(), result.SessionID, map[string]interface{}{
		"username": "mod_maria",
	})
	assert.ErrorIs(t, err, usecase.ErrUsernameTaken)
}

type recordingRegistry struct {
	tornDown []string
}

func (r *recordingRegistry) Teardown(sessionID string) {
	r.tornDown = append(r.tornDown, sessionID)
}
