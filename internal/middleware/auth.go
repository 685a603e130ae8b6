package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/slot-exchange/internal/auth"
	"github.com/BruksfildServices01/slot-exchange/internal/config"
	"github.com/BruksfildServices01/slot-exchange/internal/httperr"
)

const ContextActor = "actor"

// Claims is the token payload. Issuing tokens happens elsewhere.
type Claims struct {
	Role        string   `json:"role"`
	ProviderID  string   `json:"providerId,omitempty"`
	ConsumerIDs []string `json:"consumerIds,omitempty"`
	jwt.RegisteredClaims
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header")
			return
		}

		var claims Claims
		token, err := jwt.ParseWithClaims(parts[1], &claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token")
			return
		}

		actor, ok := actorFromClaims(claims)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_payload")
			return
		}

		c.Set(ContextActor, actor)
		c.Next()
	}
}

func actorFromClaims(claims Claims) (auth.Context, bool) {
	if claims.Subject == "" {
		return auth.Context{}, false
	}

	actor := auth.Context{
		UserID:      claims.Subject,
		Role:        auth.Role(claims.Role),
		ProviderID:  claims.ProviderID,
		ConsumerIDs: claims.ConsumerIDs,
	}

	switch actor.Role {
	case auth.RoleProvider:
		if actor.ProviderID == "" {
			return auth.Context{}, false
		}
	case auth.RoleConsumer:
		// A consumer always acts for itself.
		if len(actor.ConsumerIDs) == 0 {
			actor.ConsumerIDs = []string{actor.UserID}
		}
	case auth.RoleParent:
		if len(actor.ConsumerIDs) == 0 {
			return auth.Context{}, false
		}
	default:
		return auth.Context{}, false
	}

	return actor, true
}

// Actor returns the identity resolved by AuthMiddleware.
func Actor(c *gin.Context) (auth.Context, bool) {
	v, ok := c.Get(ContextActor)
	if !ok {
		return auth.Context{}, false
	}
	actor, ok := v.(auth.Context)
	return actor, ok
}

// RequireProvider lets only provider tokens through.
func RequireProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := Actor(c)
		if !ok || actor.Role != auth.RoleProvider {
			httperr.Abort(c, http.StatusForbidden, "provider_only")
			return
		}
		c.Next()
	}
}
