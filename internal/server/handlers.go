package server

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/roach88/textvault/internal/engine"
	"github.com/roach88/textvault/internal/errors"
	"github.com/roach88/textvault/internal/ir"
)

type listResponse struct {
	Data           []ir.StringRecord `json:"data"`
	Count          int               `json:"count"`
	FiltersApplied map[string]any    `json:"filters_applied"`
}

type interpretedQuery struct {
	Original      string         `json:"original"`
	ParsedFilters map[string]any `json:"parsed_filters"`
}

type naturalResponse struct {
	Data             []ir.StringRecord `json:"data"`
	Count            int               `json:"count"`
	InterpretedQuery interpretedQuery  `json:"interpreted_query"`
}

func (srv *Server) handleHealth(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (srv *Server) handleCreate(c fiber.Ctx) error {
	value, status, detail := decodeValue(c.Body())
	if status != 0 {
		return writeError(c, status, engine.CodeInvalidInput, detail)
	}

	rec, err := srv.engine.Create(c.Context(), value)
	if err != nil {
		return srv.writeEngineError(c, err, "create")
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (srv *Server) handleGet(c fiber.Ctx) error {
	value, err := pathValue(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, engine.CodeInvalidInput, err.Error())
	}

	rec, err := srv.engine.Get(c.Context(), value)
	if err != nil {
		return srv.writeEngineError(c, err, "get")
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

func (srv *Server) handleList(c fiber.Ctx) error {
	res, err := srv.engine.ListValues(c.Context(), c.Queries())
	if err != nil {
		return srv.writeEngineError(c, err, "list")
	}
	return c.Status(fiber.StatusOK).JSON(listResponse{
		Data:           res.Records,
		Count:          len(res.Records),
		FiltersApplied: res.Applied,
	})
}

func (srv *Server) handleNaturalLanguage(c fiber.Ctx) error {
	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		return writeError(c, fiber.StatusBadRequest, engine.CodeUnparseableQuery, "Unable to parse natural language query")
	}

	res, err := srv.engine.FilterNatural(c.Context(), query)
	if errors.IsUnparseableQuery(err) {
		return writeError(c, fiber.StatusUnprocessableEntity, engine.CodeUnparseableQuery, "Query resulted in no valid filters")
	}
	if err != nil {
		return srv.writeEngineError(c, err, "filter natural language")
	}

	return c.Status(fiber.StatusOK).JSON(naturalResponse{
		Data:  res.Records,
		Count: len(res.Records),
		InterpretedQuery: interpretedQuery{
			Original:      res.Original,
			ParsedFilters: res.Parsed,
		},
	})
}

func (srv *Server) handleDelete(c fiber.Ctx) error {
	value, err := pathValue(c)
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, engine.CodeInvalidInput, err.Error())
	}

	if err := srv.engine.Delete(c.Context(), value); err != nil {
		return srv.writeEngineError(c, err, "delete")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// decodeValue extracts the "value" field of a create request.
// When the body is unusable it returns the HTTP status and client message.
func decodeValue(body []byte) (value string, status int, detail string) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return "", fiber.StatusBadRequest, "Invalid request body"
	}

	raw, ok := fields["value"]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return "", fiber.StatusBadRequest, "Value field is required"
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return "", fiber.StatusUnprocessableEntity, "Value must be a string"
	}
	if value == "" {
		return "", fiber.StatusBadRequest, "Value field is required"
	}
	return value, 0, ""
}

// pathValue returns the percent-decoded text after /strings/.
func pathValue(c fiber.Ctx) (string, error) {
	value, err := url.PathUnescape(c.Params("*"))
	if err != nil {
		return "", errors.Wrap(err, "malformed path")
	}
	return value, nil
}
