// Package http exposes the assistant over a small REST surface.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/albait/assistant/internal/engine"
)

// HTTP wires the session manager into fiber handlers.
type HTTP struct {
	manager *engine.Manager
	log     zerolog.Logger
}

// New returns the handler set.
func New(manager *engine.Manager, log zerolog.Logger) *HTTP {
	return &HTTP{manager: manager, log: log}
}

// Register mounts all routes on the app.
func (h *HTTP) Register(app *fiber.App) {
	app.Get("/health", h.health)
	app.Post("/api/search", h.search)
	app.Delete("/api/session/:id", h.resetSession)
	app.Get("/api/packages/comparison", h.comparison)
}

// SearchRequest is the body of POST /api/search. An empty session_id starts
// a new session; the response echoes the ID to use on follow-ups.
type SearchRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

// SearchResponse wraps the engine result with its session ID.
type SearchResponse struct {
	SessionID string        `json:"session_id"`
	Result    engine.Result `json:"result"`
}

func (h *HTTP) search(c *fiber.Ctx) error {
	var req SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "malformed request body")
	}
	if req.Query == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query must not be empty")
	}

	id, res := h.manager.Search(req.SessionID, req.Query)
	h.log.Info().
		Str("session", id).
		Str("intent", res.Intent).
		Int("confidence", res.Confidence).
		Msg("query answered")

	return c.JSON(SearchResponse{SessionID: id, Result: res})
}

func (h *HTTP) resetSession(c *fiber.Ctx) error {
	h.manager.Reset(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *HTTP) comparison(c *fiber.Ctx) error {
	cmp := h.manager.Comparison()
	if cmp == nil {
		return fiber.NewError(fiber.StatusNotFound, "no packages available")
	}
	return c.JSON(cmp)
}

func (h *HTTP) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"sessions": h.manager.SessionCount(),
	})
}
