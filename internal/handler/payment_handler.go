package handler

import (
	"errors"

	"go-printpos-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	service service.PaymentService
}

func NewPaymentHandler(s service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: s}
}

// Settle records a payment against an order
// POST /api/v1/payments/:orderId/settle
func (h *PaymentHandler) Settle(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("orderId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var req service.SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.Settle(orderID, req, getActor(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadySettled):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"message": "Payment recorded", "data": order})
}

// Search looks up orders by receipt number or customer name
// GET /api/v1/payments/search?q=...
func (h *PaymentHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Query parameter 'q' is required"})
	}

	orders, err := h.service.SearchOrders(query)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

// RecentUnpaid lists the latest outstanding orders
// GET /api/v1/payments/unpaid
func (h *PaymentHandler) RecentUnpaid(c *fiber.Ctx) error {
	orders, err := h.service.RecentUnpaid()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}
