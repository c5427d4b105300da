package service

import (
	"errors"
	"fmt"
	"math/rand"

	"go-printpos-ws/internal/model"
	"go-printpos-ws/internal/pricing"
	"go-printpos-ws/internal/repository"
	"go-printpos-ws/internal/ws"
	"go-printpos-ws/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoItems       = errors.New("order must contain at least one item")
	ErrEditPaidOrder = errors.New("a fully paid order can only be edited by a supervisor or owner")
	ErrInvalidStatus = errors.New("unknown production status")
)

type OrderService interface {
	Create(req *CreateOrderRequest, actor Actor) (*model.Order, error)
	Update(orderID uuid.UUID, req *CreateOrderRequest, actor Actor) (*model.Order, error)
	Delete(orderID uuid.UUID, actor Actor) error
	SetProductionStatus(orderID uuid.UUID, status model.ProductionStatus, actor Actor) error
	GetAll() ([]model.Order, error)
	GetByID(orderID uuid.UUID) (*model.Order, error)
	Receipt(orderID uuid.UUID) (*ReceiptData, error)
}

// CreateOrderRequest doubles as the edit form. It deliberately has no
// payment or production fields: those change only through the payment
// ledger and the status endpoint.
type CreateOrderRequest struct {
	CustomerName  string           `json:"customer_name" validate:"required"`
	CustomerPhone string           `json:"customer_phone" validate:"required"`
	Items         []OrderItemInput `json:"items"`
	Discount      int64            `json:"discount"`
	DiscountNote  string           `json:"discount_note"`
	OtherFees     int64            `json:"other_fees"`
	OtherFeesNote string           `json:"other_fees_note"`
}

type OrderItemInput struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Note      string  `json:"note"`
}

// ReceiptData is the structured payload the presentation layer renders
// into a printable receipt.
type ReceiptData struct {
	StoreName    string    `json:"store_name"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	ReceiptNotes string    `json:"receipt_notes"`
	LogoURL      string    `json:"logo_url"`
	Order        OrderSlip `json:"order"`
}

type OrderSlip struct {
	OrderNo       string        `json:"order_no"`
	CreatedAt     string        `json:"created_at"`
	Cashier       string        `json:"cashier"`
	CustomerName  string        `json:"customer_name"`
	Lines         []ReceiptLine `json:"lines"`
	Subtotal      int64         `json:"subtotal"`
	Discount      int64         `json:"discount"`
	DiscountNote  string        `json:"discount_note"`
	OtherFees     int64         `json:"other_fees"`
	OtherFeesNote string        `json:"other_fees_note"`
	TotalCost     int64         `json:"total_cost"`
	PaidAmount    int64         `json:"paid_amount"`
	Remaining     int64         `json:"remaining"`
	Change        int64         `json:"change"`
}

type ReceiptLine struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	IsDimension bool    `json:"is_dimension"`
	Note        string  `json:"note,omitempty"`
	LinePrice   int64   `json:"line_price"`
}

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	storeRepo    repository.StoreSettingsRepository
	db           *gorm.DB
	wsHub        *ws.Hub
	appID        string
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	storeRepo repository.StoreSettingsRepository,
	db *gorm.DB,
	hub *ws.Hub,
	appID string,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		storeRepo:    storeRepo,
		db:           db,
		wsHub:        hub,
		appID:        appID,
	}
}

// generateOrderNo produces the 6-digit receipt number. It is random and
// NOT checked for uniqueness; collisions are a known, accepted risk.
func generateOrderNo() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// buildLines resolves item inputs against the catalog, coercing
// quantities and snapshotting the product name and computed line price.
// A missing product degrades to a zero-priced line, never an error.
func (s *orderService) buildLines(inputs []OrderItemInput) []model.OrderItem {
	lines := make([]model.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		item := model.OrderItem{
			ProductID: in.ProductID,
			Quantity:  pricing.CoerceQuantity(in.Quantity),
			Width:     in.Width,
			Height:    in.Height,
			Note:      in.Note,
		}

		var product *model.Product
		if pid, err := uuid.Parse(in.ProductID); err == nil {
			product, _ = s.productRepo.FindByID(pid)
		}
		if product != nil {
			item.ProductName = product.Name
		}
		item.LinePrice = pricing.LinePrice(item, product)

		lines = append(lines, item)
	}
	return lines
}

func (s *orderService) Create(req *CreateOrderRequest, actor Actor) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	items := s.buildLines(req.Items)
	subtotal, totalCost := pricing.OrderTotals(items, req.Discount, req.OtherFees)

	order := &model.Order{
		OrderNo:          generateOrderNo(),
		CustomerName:     req.CustomerName,
		CustomerPhone:    req.CustomerPhone,
		Items:            items,
		Subtotal:         subtotal,
		Discount:         req.Discount,
		DiscountNote:     req.DiscountNote,
		OtherFees:        req.OtherFees,
		OtherFeesNote:    req.OtherFeesNote,
		TotalCost:        totalCost,
		PaidAmount:       0,
		PaymentStatus:    model.PaymentUnpaid,
		ProductionStatus: model.ProductionDesignQueue,
		CreatedByUserID:  &actor.UserID,
		CreatedByName:    actor.Username,
	}
	order.CreatedBy = actor.UserID
	order.UpdatedBy = actor.UserID

	err := s.db.Transaction(func(tx *gorm.DB) error {
		customer := &model.Customer{Phone: req.CustomerPhone, Name: req.CustomerName}
		customer.CreatedBy = actor.UserID
		customer.UpdatedBy = actor.UserID
		if err := s.customerRepo.Upsert(tx, customer); err != nil {
			return err
		}
		return s.orderRepo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "orders", "order_created", map[string]interface{}{
		"id":            order.ID,
		"order_no":      order.OrderNo,
		"customer_name": order.CustomerName,
		"total_cost":    order.TotalCost,
		"created_by":    actor.Username,
	})
	go s.wsHub.NotifyCollection(s.appID, "customers", "customer_upserted", map[string]interface{}{
		"phone": req.CustomerPhone,
		"name":  req.CustomerName,
	})

	return order, nil
}

func (s *orderService) Update(orderID uuid.UUID, req *CreateOrderRequest, actor Actor) (*model.Order, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if len(req.Items) == 0 {
		return nil, ErrNoItems
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if !model.CanEditOrder(actor.RoleCode, order.PaymentStatus) {
		return nil, ErrEditPaidOrder
	}

	items := s.buildLines(req.Items)
	subtotal, totalCost := pricing.OrderTotals(items, req.Discount, req.OtherFees)

	// Only the editable surface changes here. Payment fields, production
	// status and the creator snapshot stay untouched.
	order.CustomerName = req.CustomerName
	order.CustomerPhone = req.CustomerPhone
	order.Subtotal = subtotal
	order.Discount = req.Discount
	order.DiscountNote = req.DiscountNote
	order.OtherFees = req.OtherFees
	order.OtherFeesNote = req.OtherFeesNote
	order.TotalCost = totalCost
	order.UpdatedBy = actor.UserID

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.ReplaceItems(tx, order.ID, items); err != nil {
			return err
		}
		return s.orderRepo.Save(tx, order)
	})
	if err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "orders", "order_updated", map[string]interface{}{
		"id":         order.ID,
		"order_no":   order.OrderNo,
		"total_cost": order.TotalCost,
		"updated_by": actor.Username,
	})

	return s.orderRepo.FindByID(order.ID)
}

func (s *orderService) Delete(orderID uuid.UUID, actor Actor) error {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return ErrOrderNotFound
	}

	if err := s.orderRepo.Delete(order.ID, actor.UserID); err != nil {
		return err
	}

	go s.wsHub.NotifyCollection(s.appID, "orders", "order_deleted", map[string]interface{}{
		"id":       order.ID,
		"order_no": order.OrderNo,
	})

	return nil
}

// SetProductionStatus moves the order to any of the four stages. There
// is deliberately no ordering check: jumping DONE back to DESIGN_QUEUE
// is allowed for any role that can view orders.
func (s *orderService) SetProductionStatus(orderID uuid.UUID, status model.ProductionStatus, actor Actor) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		return ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateProductionStatus(orderID, status, actor.UserID); err != nil {
		return err
	}

	go s.wsHub.NotifyCollection(s.appID, "orders", "production_status_changed", map[string]interface{}{
		"id":                orderID,
		"production_status": status,
		"updated_by":        actor.Username,
	})

	return nil
}

func (s *orderService) GetAll() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetByID(orderID uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) Receipt(orderID uuid.UUID) (*ReceiptData, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	settings, err := s.storeRepo.Get()
	if err != nil {
		return nil, err
	}

	lines := make([]ReceiptLine, 0, len(order.Items))
	for _, item := range order.Items {
		name := item.ProductName
		if name == "" {
			name = "N/A"
		}
		lines = append(lines, ReceiptLine{
			Name:        name,
			Quantity:    item.Quantity,
			Width:       item.Width,
			Height:      item.Height,
			IsDimension: item.Width > 0 && item.Height > 0,
			Note:        item.Note,
			LinePrice:   item.LinePrice,
		})
	}

	return &ReceiptData{
		StoreName:    settings.StoreName,
		Address:      settings.Address,
		Phone:        settings.Phone,
		ReceiptNotes: settings.ReceiptNotes,
		LogoURL:      settings.LogoURL,
		Order: OrderSlip{
			OrderNo:       order.OrderNo,
			CreatedAt:     order.CreatedAt.Format("2006-01-02 15:04:05"),
			Cashier:       order.CreatedByName,
			CustomerName:  order.CustomerName,
			Lines:         lines,
			Subtotal:      order.Subtotal,
			Discount:      order.Discount,
			DiscountNote:  order.DiscountNote,
			OtherFees:     order.OtherFees,
			OtherFeesNote: order.OtherFeesNote,
			TotalCost:     order.TotalCost,
			PaidAmount:    order.PaidAmount,
			Remaining:     order.RemainingBalance(),
			Change:        order.Change(),
		},
	}, nil
}
