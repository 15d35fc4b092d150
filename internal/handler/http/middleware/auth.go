package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vibra-app/vibra/internal/handler/http/dto"
	"github.com/vibra-app/vibra/internal/usecase"
	usecasecontract "github.com/vibra-app/vibra/internal/usecase/contract"
)

// AuthMiddleWare validates the Bearer access token, checks that the
// session it names is still open, and stores the caller's identity on
// the gin context under "userID", "sessionID" and "role".
func AuthMiddleWare(jwtService usecase.JWTService, sessions usecasecontract.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			abortUnauthorized(c, "Authorization header must be a Bearer token")
			return
		}

		claims, err := jwtService.ParseAccessToken(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		// The session record is authoritative: a logged-out session
		// invalidates a still-unexpired token.
		user, err := sessions.CurrentUser(c.Request.Context(), claims.SessionID)
		if err != nil {
			abortUnauthorized(c, "Session is no longer active")
			return
		}

		c.Set("userID", user.ID)
		c.Set("sessionID", claims.SessionID)
		c.Set("role", user.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: message})
}
