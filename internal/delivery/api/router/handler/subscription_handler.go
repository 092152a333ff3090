package handler

import (
	"net/http"

	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/response"
	"tube/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
}

// SubscriptionHandler serves the subscription graph endpoints.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUC: params.SubscriptionUC}
}

// Subscribe makes the caller follow the channel in the path.
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	subscriberID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	channelID, err := pathUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	channel, err := h.subscriptionUC.Subscribe(c.Request().Context(), subscriberID, channelID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, userEnvelope[*ChannelView]{User: newChannelView(channel, true)})
}

// Unsubscribe stops the caller following the channel in the path.
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	subscriberID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	channelID, err := pathUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	channel, err := h.subscriptionUC.Unsubscribe(c.Request().Context(), subscriberID, channelID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, userEnvelope[*ChannelView]{User: newChannelView(channel, false)})
}

// ListSubscriptions lists the channels the path user follows.
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	userID, err := pathUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	channels, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, subscriptionsEnvelope{Subscriptions: channels})
}
