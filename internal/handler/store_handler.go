package handler

import (
	"go-printpos-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StoreHandler struct {
	service service.StoreService
}

func NewStoreHandler(s service.StoreService) *StoreHandler {
	return &StoreHandler{service: s}
}

// GetSettings returns the store profile used on receipts
// GET /api/v1/store
func (h *StoreHandler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.service.Get()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(settings)
}

// UpdateSettings updates the store profile
// PUT /api/v1/store
func (h *StoreHandler) UpdateSettings(c *fiber.Ctx) error {
	var req service.StoreSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	settings, err := h.service.Update(&req, getActor(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Store settings updated", "data": settings})
}
