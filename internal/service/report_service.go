package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"go-printpos-ws/internal/report"
	"go-printpos-ws/internal/repository"
)

var ErrInvalidReportType = errors.New("report type must be daily, monthly or yearly")

const itemSalesPageSize = 10

type ReportService interface {
	Financial(reportType report.ReportType) (*FinancialReport, error)
	ItemSales(reportType report.ReportType, page int) (*ItemSalesReport, error)
	ExportFinancialCSV(reportType report.ReportType) ([]byte, error)
	ExportItemSalesCSV(reportType report.ReportType) ([]byte, error)
}

type FinancialReport struct {
	Type        report.ReportType `json:"type"`
	WindowStart time.Time         `json:"window_start"`
	WindowEnd   time.Time         `json:"window_end"`
	Summary     report.Summary    `json:"summary"`
}

type ItemSalesReport struct {
	Type        report.ReportType `json:"type"`
	WindowStart time.Time         `json:"window_start"`
	WindowEnd   time.Time         `json:"window_end"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	TotalItems  int               `json:"total_items"`
	Items       []report.ItemSale `json:"items"`
}

type reportService struct {
	orderRepo   repository.OrderRepository
	expenseRepo repository.ExpenseRepository
	productRepo repository.ProductRepository
}

func NewReportService(orderRepo repository.OrderRepository, expenseRepo repository.ExpenseRepository, productRepo repository.ProductRepository) ReportService {
	return &reportService{
		orderRepo:   orderRepo,
		expenseRepo: expenseRepo,
		productRepo: productRepo,
	}
}

func (s *reportService) window(reportType report.ReportType) (start, end time.Time, err error) {
	if !reportType.Valid() {
		return time.Time{}, time.Time{}, ErrInvalidReportType
	}
	start, end = report.WindowFor(reportType, time.Now())
	return start, end, nil
}

func (s *reportService) Financial(reportType report.ReportType) (*FinancialReport, error) {
	start, end, err := s.window(reportType)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.FindByWindow(start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindByWindow(start, end)
	if err != nil {
		return nil, err
	}

	return &FinancialReport{
		Type:        reportType,
		WindowStart: start,
		WindowEnd:   end,
		Summary:     report.Summarize(orders, expenses),
	}, nil
}

func (s *reportService) itemSales(reportType report.ReportType) ([]report.ItemSale, time.Time, time.Time, error) {
	start, end, err := s.window(reportType)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	orders, err := s.orderRepo.FindByWindow(start, end)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	return report.ItemSales(orders, products), start, end, nil
}

func (s *reportService) ItemSales(reportType report.ReportType, page int) (*ItemSalesReport, error) {
	if page < 1 {
		page = 1
	}

	sales, start, end, err := s.itemSales(reportType)
	if err != nil {
		return nil, err
	}

	return &ItemSalesReport{
		Type:        reportType,
		WindowStart: start,
		WindowEnd:   end,
		Page:        page,
		PageSize:    itemSalesPageSize,
		TotalItems:  len(sales),
		Items:       report.Paginate(sales, page, itemSalesPageSize),
	}, nil
}

// ExportFinancialCSV renders the financial summary as a small two-column
// CSV for download.
func (s *reportService) ExportFinancialCSV(reportType report.ReportType) ([]byte, error) {
	fin, err := s.Financial(reportType)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"metric", "amount"},
		{"total_sales", strconv.FormatInt(fin.Summary.TotalSales, 10)},
		{"cash_in", strconv.FormatInt(fin.Summary.CashIn, 10)},
		{"total_expenses", strconv.FormatInt(fin.Summary.TotalExpenses, 10)},
		{"profit", strconv.FormatInt(fin.Summary.Profit, 10)},
		{"cash_flow", strconv.FormatInt(fin.Summary.CashFlow, 10)},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportItemSalesCSV renders the full (unpaginated) item sales list.
func (s *reportService) ExportItemSalesCSV(reportType report.ReportType) ([]byte, error) {
	sales, _, _, err := s.itemSales(reportType)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"product_id", "name", "quantity_sold", "total_revenue"}); err != nil {
		return nil, err
	}
	for _, sale := range sales {
		row := []string{
			sale.ProductID,
			sale.Name,
			strconv.Itoa(sale.QuantitySold),
			strconv.FormatInt(sale.TotalRevenue, 10),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
