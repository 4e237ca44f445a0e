package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadex/registry/internal/app/models/dto"
	"github.com/acadex/registry/internal/pkg/auth"
)

// ActorMiddleware resolves who is making a change so audit rows can carry an
// actor. Attribution is optional: requests without a token proceed with an
// anonymous audit trail, but a token that is present and invalid is rejected.
type ActorMiddleware struct {
	jwtService *auth.JWTService
}

// NewActorMiddleware creates a new ActorMiddleware
func NewActorMiddleware(jwtService *auth.JWTService) *ActorMiddleware {
	return &ActorMiddleware{jwtService: jwtService}
}

// ActorAttribution extracts the actor identity from a Bearer token and
// stores it in the request context.
func (m *ActorMiddleware) ActorAttribution() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.jwtService.Enabled() {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid authorization header")))
			return
		}

		actor, err := m.jwtService.ParseActor(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Invalid or expired token")))
			return
		}

		c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
