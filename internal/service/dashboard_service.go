package service

import (
	"time"

	"go-printpos-ws/internal/report"
	"go-printpos-ws/internal/repository"
)

const bestSellerLimit = 5

type DashboardService interface {
	Stats() (*DashboardStats, error)
}

// DashboardStats backs the landing page: today's numbers plus the
// all-time best sellers.
type DashboardStats struct {
	SalesToday  int64               `json:"sales_today"`
	OrdersToday int                 `json:"orders_today"`
	UnpaidCount int64               `json:"unpaid_count"`
	BestSellers []report.BestSeller `json:"best_sellers"`
}

type dashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

func NewDashboardService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) DashboardService {
	return &dashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

func (s *dashboardService) Stats() (*DashboardStats, error) {
	start, end := report.WindowFor(report.Daily, time.Now())

	todays, err := s.orderRepo.FindByWindow(start, end)
	if err != nil {
		return nil, err
	}

	var salesToday int64
	for _, o := range todays {
		salesToday += o.TotalCost
	}

	unpaid, err := s.orderRepo.CountUnpaid()
	if err != nil {
		return nil, err
	}

	allOrders, err := s.orderRepo.FindAll()
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		SalesToday:  salesToday,
		OrdersToday: len(todays),
		UnpaidCount: unpaid,
		BestSellers: report.BestSellers(allOrders, products, bestSellerLimit),
	}, nil
}
