package service

import (
	"errors"

	"go-printpos-ws/internal/model"
	"go-printpos-ws/internal/repository"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CustomerService interface {
	GetAll() ([]model.Customer, error)
	History(phone string) (*CustomerHistory, error)
}

// CustomerHistory is the customer detail view: the contact record plus
// every order placed under that phone number.
type CustomerHistory struct {
	Customer model.Customer `json:"customer"`
	Orders   []model.Order  `json:"orders"`
}

type customerService struct {
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, orderRepo repository.OrderRepository) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
	}
}

func (s *customerService) GetAll() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) History(phone string) (*CustomerHistory, error) {
	customer, err := s.customerRepo.FindByPhone(phone)
	if err != nil {
		return nil, ErrCustomerNotFound
	}

	orders, err := s.orderRepo.FindByCustomerPhone(phone)
	if err != nil {
		return nil, err
	}

	return &CustomerHistory{
		Customer: *customer,
		Orders:   orders,
	}, nil
}
