package service

import (
	"errors"

	"go-printpos-ws/internal/model"
	"go-printpos-ws/internal/repository"
	"go-printpos-ws/internal/ws"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService interface {
	Create(req *ProductRequest, actor Actor) (*model.Product, error)
	Update(id uuid.UUID, req *ProductRequest, actor Actor) (*model.Product, error)
	Delete(id uuid.UUID, actor Actor) error
	GetAll() ([]model.Product, error)
	GetByID(id uuid.UUID) (*model.Product, error)
}

type ProductRequest struct {
	Name              string                  `json:"name" validate:"required"`
	Price             int64                   `json:"price" validate:"gte=0"`
	CalculationMethod model.CalculationMethod `json:"calculation_method" validate:"required,oneof=UNIT PACKAGE DIMENSION"`
}

type productService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
	appID       string
}

func NewProductService(productRepo repository.ProductRepository, hub *ws.Hub, appID string) ProductService {
	return &productService{
		productRepo: productRepo,
		wsHub:       hub,
		appID:       appID,
	}
}

func (s *productService) Create(req *ProductRequest, actor Actor) (*model.Product, error) {
	product := &model.Product{
		Name:              req.Name,
		Price:             req.Price,
		CalculationMethod: req.CalculationMethod,
	}
	product.CreatedBy = actor.UserID
	product.UpdatedBy = actor.UserID

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "products", "product_created", product)

	return product, nil
}

func (s *productService) Update(id uuid.UUID, req *ProductRequest, actor Actor) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	product.Name = req.Name
	product.Price = req.Price
	product.CalculationMethod = req.CalculationMethod
	product.UpdatedBy = actor.UserID

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "products", "product_updated", product)

	return product, nil
}

// Delete soft-deletes the catalog entry. Past orders keep their stored
// name and price snapshots; reports skip the product from then on.
func (s *productService) Delete(id uuid.UUID, actor Actor) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}

	if err := s.productRepo.Delete(id, actor.UserID); err != nil {
		return err
	}

	go s.wsHub.NotifyCollection(s.appID, "products", "product_deleted", map[string]interface{}{
		"id": id.String(),
	})

	return nil
}

func (s *productService) GetAll() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *productService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
