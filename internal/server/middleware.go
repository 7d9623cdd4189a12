package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/logger"
)

// HeaderRequestID carries the request correlation id in both directions.
const HeaderRequestID = "X-Request-ID"

type requestIDKey struct{}

// requestID reuses the client's X-Request-ID or assigns a new UUID, and echoes
// it on the response.
func requestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDKey{}, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}

func requestIDFrom(c fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey{}).(string)
	return id
}

// accessLog writes one entry per request after the rest of the chain ran.
func accessLog(log *zap.SugaredLogger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		log.Infow("Request",
			logger.FieldRequestID, requestIDFrom(c),
			logger.FieldMethod, c.Method(),
			logger.FieldPath, c.Path(),
			logger.FieldStatus, status,
			logger.FieldDurationMS, time.Since(start).Milliseconds())
		return err
	}
}

// rateLimit applies a process-wide token bucket. Requests over the limit get
// 429 without reaching the handlers.
func rateLimit(perSecond float64, burst int) fiber.Handler {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)
	return func(c fiber.Ctx) error {
		if !limiter.Allow() {
			return writeError(c, fiber.StatusTooManyRequests, CodeRateLimited, "Too many requests")
		}
		return c.Next()
	}
}
