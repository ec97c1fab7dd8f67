package forge

import (
	"errors"

	"rune-forge/core/logger"
	"rune-forge/feature/forge/store"
	"rune-forge/feature/forge/synthesis"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the forge.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the forge routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/forge")
	group.Post("/craft", h.HandleCraft)
	group.Get("/records", h.HandleRecords)
	group.Get("/report", h.HandleReport)
	group.Post("/clean", h.HandleClean)
}

// CraftRequest is the craft endpoint payload.
type CraftRequest struct {
	BaseItemID string   `json:"baseItemId"`
	Runes      []string `json:"runes"`
}

// HandleCraft crafts a new item from a base item and three runes.
func (h *Handler) HandleCraft(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.service.Craft(c.Context(), req.BaseItemID, req.Runes)
	if err != nil {
		status := craftStatus(err)
		if status == fiber.StatusInternalServerError {
			l.Error("Craft failed", zap.Error(err))
		} else {
			l.Warn("Craft rejected", zap.Error(err))
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleRecords lists the live craft records.
func (h *Handler) HandleRecords(c *fiber.Ctx) error {
	return c.JSON(h.service.Records())
}

// HandleReport returns slot usage against capacity.
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	return c.JSON(h.service.Report())
}

// HandleClean runs the stale-record cleanup pass.
func (h *Handler) HandleClean(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Clean(c.Context()); err != nil {
		l.Error("Cleanup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(h.service.Report())
}

// craftStatus maps craft errors onto HTTP statuses.
func craftStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRuneItem), errors.Is(err, synthesis.ErrInvalidRuneCode):
		return fiber.StatusBadRequest
	case errors.Is(err, synthesis.ErrItemNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, store.ErrIDExhaustion), errors.Is(err, store.ErrStorageQuotaExceeded):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
