package server

import (
	"github.com/gofiber/fiber/v3"

	"github.com/roach88/textvault/internal/engine"
	"github.com/roach88/textvault/internal/errors"
)

// CodeRateLimited is returned with HTTP 429.
const CodeRateLimited engine.ErrorCode = "RATE_LIMITED"

type errorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// statusFor maps an engine error code to an HTTP status.
func statusFor(code engine.ErrorCode) int {
	switch code {
	case engine.CodeInvalidInput, engine.CodeUnparseableQuery:
		return fiber.StatusBadRequest
	case engine.CodeConflict:
		return fiber.StatusConflict
	case engine.CodeNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// detailFor returns the client-facing message for an engine error.
// Store and internal failures never leak their cause.
func detailFor(code engine.ErrorCode, err error) string {
	switch code {
	case engine.CodeConflict:
		return "String already exists"
	case engine.CodeNotFound:
		return "String not found"
	case engine.CodeInvalidInput, engine.CodeUnparseableQuery:
		return err.Error()
	default:
		return "Internal server error"
	}
}

func writeError(c fiber.Ctx, status int, code engine.ErrorCode, detail string) error {
	return c.Status(status).JSON(errorResponse{Detail: detail, Code: string(code)})
}

// writeEngineError classifies err and writes the matching response.
// Unexpected failures are logged with the request id.
func (srv *Server) writeEngineError(c fiber.Ctx, err error, op string) error {
	code := engine.Code(err)
	status := statusFor(code)
	if status >= fiber.StatusInternalServerError {
		srv.logger.Errorw("Request failed",
			"operation", op,
			"request_id", requestIDFrom(c),
			"error_code", code,
			"error", err)
	}
	return writeError(c, status, code, detailFor(code, err))
}

// errorHandler renders errors that escape handlers, such as unknown routes.
func errorHandler(c fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return writeError(c, fe.Code, httpErrorCode(fe.Code), fe.Message)
	}
	return writeError(c, fiber.StatusInternalServerError, engine.CodeInternal, "Internal server error")
}

func httpErrorCode(status int) engine.ErrorCode {
	switch status {
	case fiber.StatusNotFound:
		return engine.CodeNotFound
	case fiber.StatusTooManyRequests:
		return CodeRateLimited
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return engine.CodeInvalidInput
	default:
		return engine.CodeInternal
	}
}
