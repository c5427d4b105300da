package service

import (
	"errors"
	"time"

	"go-printpos-ws/internal/model"
	"go-printpos-ws/internal/repository"
	"go-printpos-ws/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAlreadySettled       = errors.New("order is already fully paid")
	ErrInvalidPaymentType   = errors.New("payment type must be 'partial' or 'full'")
	ErrInvalidPaymentMethod = errors.New("payment method must be CASH or TRANSFER")
)

type PaymentType string

const (
	PaymentPartial PaymentType = "partial"
	PaymentFull    PaymentType = "full"
)

type SettleRequest struct {
	Type   PaymentType         `json:"type"`
	Amount int64               `json:"amount"`
	Method model.PaymentMethod `json:"method"`
}

type PaymentService interface {
	Settle(orderID uuid.UUID, req SettleRequest, actor Actor) (*model.Order, error)
	SearchOrders(query string) ([]model.Order, error)
	RecentUnpaid() ([]model.Order, error)
}

type paymentService struct {
	orderRepo repository.OrderRepository
	db        *gorm.DB
	wsHub     *ws.Hub
	appID     string
}

func NewPaymentService(orderRepo repository.OrderRepository, db *gorm.DB, hub *ws.Hub, appID string) PaymentService {
	return &paymentService{
		orderRepo: orderRepo,
		db:        db,
		wsHub:     hub,
		appID:     appID,
	}
}

// appliedAmount computes how much a settlement applies to the order.
// A full settlement pays exactly the remaining balance and ignores the
// amount field. A partial settlement applies the entered amount verbatim,
// with no check against the remaining balance: overpayment is allowed
// and simply pushes paidAmount past totalCost.
func appliedAmount(order *model.Order, req SettleRequest) (int64, error) {
	if order.PaymentStatus == model.PaymentPaid {
		return 0, ErrAlreadySettled
	}
	switch req.Type {
	case PaymentFull:
		return order.TotalCost - order.PaidAmount, nil
	case PaymentPartial:
		return req.Amount, nil
	default:
		return 0, ErrInvalidPaymentType
	}
}

// Settle applies a payment to an order. It is intentionally NOT
// idempotent: settling twice with the same input records two payments.
// Callers must guard against double submission.
func (s *paymentService) Settle(orderID uuid.UUID, req SettleRequest, actor Actor) (*model.Order, error) {
	if req.Method != model.PayCash && req.Method != model.PayTransfer {
		return nil, ErrInvalidPaymentMethod
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order model.Order
		// Lock the order row so concurrent settlements serialize
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&order, "id = ?", orderID).Error; err != nil {
			return ErrOrderNotFound
		}

		applied, err := appliedAmount(&order, req)
		if err != nil {
			return err
		}

		newPaidAmount := order.PaidAmount + applied
		newStatus := model.PaymentStatusFor(newPaidAmount, order.TotalCost)

		if err := s.orderRepo.UpdatePaymentFields(tx, order.ID, map[string]interface{}{
			"paid_amount":    newPaidAmount,
			"payment_status": newStatus,
			"payment_method": req.Method,
			"updated_by":     actor.UserID,
		}); err != nil {
			return err
		}

		record := &model.PaymentRecord{
			OrderID:          order.ID,
			Amount:           applied,
			Method:           req.Method,
			RecordedByUserID: actor.UserID,
			RecordedByName:   actor.Username,
			PaidAt:           time.Now(),
		}
		return s.orderRepo.AppendPayment(tx, record)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return nil, err
	}

	go s.wsHub.NotifyCollection(s.appID, "orders", "payment_settled", map[string]interface{}{
		"id":             updated.ID,
		"order_no":       updated.OrderNo,
		"paid_amount":    updated.PaidAmount,
		"payment_status": updated.PaymentStatus,
		"recorded_by":    actor.Username,
	})

	return updated, nil
}

func (s *paymentService) SearchOrders(query string) ([]model.Order, error) {
	return s.orderRepo.Search(query)
}

// RecentUnpaid lists the latest 20 outstanding orders for the payments
// screen shortcut list.
func (s *paymentService) RecentUnpaid() ([]model.Order, error) {
	return s.orderRepo.RecentUnpaid(20)
}
