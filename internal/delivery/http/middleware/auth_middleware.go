package middleware

import (
	"strings"

	"lookate/internal/delivery/http/response"
	"lookate/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextUserID is the echo context key carrying the authenticated user id.
const ContextUserID = "userID"

// ContextUserName is the echo context key carrying the token's name claim.
const ContextUserName = "userName"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the caller's
// identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "AUTHENTICATION_FAILED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTHENTICATION_FAILED", "Invalid token format, must be Bearer token")
		}

		userID, userName, err := IdentityFromToken(m.tokenSvc, tokenString)
		if err != nil {
			return response.Unauthorized(c, "AUTHENTICATION_FAILED", err.Error())
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextUserName, userName)

		return next(c)
	}
}

// IdentityFromToken validates a raw token string and extracts the subject
// and name claims. The websocket handshake reuses it outside echo middleware.
func IdentityFromToken(tokenSvc service.TokenService, tokenString string) (uuid.UUID, string, error) {
	token, err := tokenSvc.ValidateToken(tokenString)
	if err != nil || !token.Valid {
		return uuid.Nil, "", echo.NewHTTPError(401, "invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", echo.NewHTTPError(401, "failed to parse token claims")
	}

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, "", echo.NewHTTPError(401, "user id missing from token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, "", echo.NewHTTPError(401, "invalid user id format in token")
	}

	userName, _ := claims["name"].(string)

	return userID, userName, nil
}
