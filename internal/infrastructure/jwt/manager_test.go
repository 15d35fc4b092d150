package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibra-app/vibra/internal/domain/entity"
	"github.com/vibra-app/vibra/internal/infrastructure/jwt"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	svc := jwt.NewJWTService(jwt.NewJWTManager("test-secret", time.Hour))

	token, err := svc.GenerateAccessToken("user-1", "session-abc", entity.UserRoleModerator)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "session-abc", claims.SessionID)
	assert.Equal(t, entity.UserRoleModerator, claims.Role)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	issuer := jwt.NewJWTService(jwt.NewJWTManager("secret-a", time.Hour))
	verifier := jwt.NewJWTService(jwt.NewJWTManager("secret-b", time.Hour))

	token, err := issuer.GenerateAccessToken("user-1", "session-abc", entity.UserRoleUser)
	require.NoError(t, err)

	_, err = verifier.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestParseAccessToken_Expired(t *testing.T) {
	svc := jwt.NewJWTService(jwt.NewJWTManager("test-secret", -time.Minute))

	token, err := svc.GenerateAccessToken("user-1", "session-abc", entity.UserRoleUser)
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.Error(t, err)
}
