package handler

import (
	"net/http"

	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/response"
	domainerrors "tube/internal/domain/errors"
	"tube/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler serves account and profile endpoints.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries a partial update. Absent fields stay unchanged.
type UpdateUserRequest struct {
	Email              *string `json:"email" validate:"omitnil,email,max=255"`
	Password           *string `json:"password" validate:"omitnil,min=1,maxbytes=72"`
	Username           *string `json:"username" validate:"omitnil,min=1,max=100"`
	ChannelDescription *string `json:"channelDescription"`
	Avatar             *string `json:"avatar"`
	Cover              *string `json:"cover"`
}

// Register creates an account and logs it in.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, userEnvelope[*AuthUserView]{User: newAuthUserView(output.User, output.Token)})
}

// Login exchanges email and password for a token.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, userEnvelope[*AuthUserView]{User: newAuthUserView(output.User, output.Token)})
}

// GetCurrentUser echoes the caller's account with the token it presented.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}
	// The auth middleware stores the token without its "Bearer " prefix.
	token, _ := middleware.GetToken(c)

	return response.JSON(c, http.StatusOK, userEnvelope[*AuthUserView]{User: newAuthUserView(user, token)})
}

// UpdateCurrentUser applies a partial update to the caller's account.
func (h *UserHandler) UpdateCurrentUser(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, &usecase.UpdateUserInput{
		Username:           req.Username,
		Email:              req.Email,
		Password:           req.Password,
		Avatar:             req.Avatar,
		Cover:              req.Cover,
		ChannelDescription: req.ChannelDescription,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, userEnvelope[*AccountView]{User: newAccountView(user)})
}

// GetUser returns a channel profile. Authenticated viewers also learn
// whether they follow it.
func (h *UserHandler) GetUser(c echo.Context) error {
	channelID, err := pathUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var viewerID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		viewerID = &id
	}

	profile, err := h.userUC.GetProfile(c.Request().Context(), viewerID, channelID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, userEnvelope[*ChannelView]{User: newChannelView(profile.User, profile.IsSubscribed)})
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body is not valid JSON")
	}

	return c.Validate(req)
}

// pathUserID treats an unparsable id like an unknown user.
func pathUserID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrUserNotFound
	}

	return id, nil
}
