package middleware

import (
	"log/slog"

	deliverycontext "tube/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware tags each request with an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

// Process echoes the id in X-Request-Id and stores it, along with a logger
// bound to it, on both the echo context and the request context.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := resolveRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))

		deliverycontext.SetRequestID(c, id)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, id)

		req := c.Request()
		ctx := deliverycontext.WithRequestID(req.Context(), id)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", id)))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// resolveRequestID keeps a caller supplied id unless it is empty or oversized.
func resolveRequestID(incoming string) string {
	if incoming == "" || len(incoming) > maxRequestIDLength {
		return uuid.NewString()
	}

	return incoming
}
