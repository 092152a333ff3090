package middleware

import (
	"strings"

	"tube/internal/delivery/api/response"
	"tube/internal/domain/entity"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	ctxKeyUser  = "user"
	ctxKeyToken = "token"

	bearerPrefix = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// AuthMiddleware resolves the bearer token into the calling user.
type AuthMiddleware struct {
	userUC usecase.UserUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{userUC: params.UserUC}
}

// Authenticate rejects the request with 401 unless it carries a valid token
// for an existing user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken.WithDetails("authorization header is missing"))
		}

		user, err := m.userUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(ctxKeyUser, user)
		c.Set(ctxKeyToken, token)

		return next(c)
	}
}

// OptionalAuthenticate identifies the caller when it can. A missing or
// invalid token lets the request through as anonymous.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}

		user, err := m.userUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			if domainerrors.KindOf(err) == domainerrors.KindInvalidToken {
				return next(c)
			}

			return response.HandleAppError(c, err)
		}

		c.Set(ctxKeyUser, user)
		c.Set(ctxKeyToken, token)

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, bearerPrefix)
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// GetUser returns the user resolved by the auth middleware.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ctxKeyUser).(*entity.User)

	return user, ok && user != nil
}

// GetUserID returns the ID of the authenticated user.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	user, ok := GetUser(c)
	if !ok {
		return uuid.Nil, false
	}

	return user.ID, true
}

// GetToken returns the raw bearer token of the authenticated request.
func GetToken(c echo.Context) (string, bool) {
	token, ok := c.Get(ctxKeyToken).(string)

	return token, ok
}
