package handler

import (
	"errors"
	"fmt"
	"time"

	"go-printpos-ws/internal/report"
	"go-printpos-ws/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func reportTypeFromQuery(c *fiber.Ctx) report.ReportType {
	return report.ReportType(c.Query("type", string(report.Daily)))
}

// GetFinancial returns the financial rollup for the current window
// GET /api/v1/reports/financial?type=daily|monthly|yearly
func (h *ReportHandler) GetFinancial(c *fiber.Ctx) error {
	fin, err := h.service.Financial(reportTypeFromQuery(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidReportType) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fin)
}

// GetItemSales returns paginated per-product sales for the current window
// GET /api/v1/reports/item-sales?type=daily&page=1
func (h *ReportHandler) GetItemSales(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	sales, err := h.service.ItemSales(reportTypeFromQuery(c), page)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReportType) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sales)
}

func sendCSV(c *fiber.Ctx, prefix string, data []byte) error {
	filename := fmt.Sprintf("%s-%s.csv", prefix, time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportFinancial downloads the financial summary as CSV
// GET /api/v1/reports/financial/export?type=daily
func (h *ReportHandler) ExportFinancial(c *fiber.Ctx) error {
	data, err := h.service.ExportFinancialCSV(reportTypeFromQuery(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidReportType) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return sendCSV(c, "financial-report", data)
}

// ExportItemSales downloads the full item sales list as CSV
// GET /api/v1/reports/item-sales/export?type=daily
func (h *ReportHandler) ExportItemSales(c *fiber.Ctx) error {
	data, err := h.service.ExportItemSalesCSV(reportTypeFromQuery(c))
	if err != nil {
		if errors.Is(err, service.ErrInvalidReportType) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return sendCSV(c, "item-sales-report", data)
}
