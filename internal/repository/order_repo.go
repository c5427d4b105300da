package repository

import (
	"time"

	"go-printpos-ws/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(tx *gorm.DB, order *model.Order) error
	Save(tx *gorm.DB, order *model.Order) error
	ReplaceItems(tx *gorm.DB, orderID uuid.UUID, items []model.OrderItem) error
	Delete(id uuid.UUID, deletedBy string) error
	FindByID(id uuid.UUID) (*model.Order, error)
	FindByOrderNo(orderNo string) (*model.Order, error)
	FindAll() ([]model.Order, error)
	Search(query string) ([]model.Order, error)
	RecentUnpaid(limit int) ([]model.Order, error)
	FindByWindow(start, end time.Time) ([]model.Order, error)
	FindByCustomerPhone(phone string) ([]model.Order, error)
	CountUnpaid() (int64, error)
	AppendPayment(tx *gorm.DB, record *model.PaymentRecord) error
	UpdatePaymentFields(tx *gorm.DB, orderID uuid.UUID, fields map[string]interface{}) error
	UpdateProductionStatus(orderID uuid.UUID, status model.ProductionStatus, updatedBy string) error
}

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) OrderRepository {
	return &orderRepo{db}
}

// Create persists the order and its line items in the supplied transaction.
func (r *orderRepo) Create(tx *gorm.DB, order *model.Order) error {
	return tx.Create(order).Error
}

func (r *orderRepo) Save(tx *gorm.DB, order *model.Order) error {
	// Items are replaced separately; avoid gorm upserting stale children
	return tx.Omit("Items", "Payments").Save(order).Error
}

// ReplaceItems swaps an order's line items wholesale. Editing an order
// always resubmits the full item list.
func (r *orderRepo) ReplaceItems(tx *gorm.DB, orderID uuid.UUID, items []model.OrderItem) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].ID = 0
		items[i].OrderID = orderID
	}
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *orderRepo) Delete(id uuid.UUID, deletedBy string) error {
	return r.db.Model(&model.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"deleted_at": gorm.Expr("NOW()"),
		"deleted_by": deletedBy,
	}).Error
}

func (r *orderRepo) FindByID(id uuid.UUID) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").Preload("Payments").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByOrderNo returns the first match. Order numbers are random
// 6-digit strings and collisions are possible; this mirrors the lookup
// behavior of the receipts themselves.
func (r *orderRepo) FindByOrderNo(orderNo string) (*model.Order, error) {
	var order model.Order
	err := r.db.Preload("Items").Preload("Payments").
		Where("order_no = ?", orderNo).
		Order("created_at ASC").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindAll() ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Preload("Payments").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) Search(query string) ([]model.Order, error) {
	var orders []model.Order
	pattern := "%" + query + "%"
	err := r.db.Preload("Items").Preload("Payments").
		Where("order_no ILIKE ? OR customer_name ILIKE ?", pattern, pattern).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) RecentUnpaid(limit int) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Preload("Payments").
		Where("payment_status = ?", model.PaymentUnpaid).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByWindow(start, end time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Preload("Payments").
		Where("created_at >= ? AND created_at < ?", start, end).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByCustomerPhone(phone string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.Preload("Items").Preload("Payments").
		Where("customer_phone = ?", phone).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepo) CountUnpaid() (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("payment_status = ?", model.PaymentUnpaid).Count(&count).Error
	return count, err
}

func (r *orderRepo) AppendPayment(tx *gorm.DB, record *model.PaymentRecord) error {
	return tx.Create(record).Error
}

// UpdatePaymentFields runs inside the settlement transaction so the
// balance update and the ledger append commit together.
func (r *orderRepo) UpdatePaymentFields(tx *gorm.DB, orderID uuid.UUID, fields map[string]interface{}) error {
	return tx.Model(&model.Order{}).Where("id = ?", orderID).Updates(fields).Error
}

func (r *orderRepo) UpdateProductionStatus(orderID uuid.UUID, status model.ProductionStatus, updatedBy string) error {
	return r.db.Model(&model.Order{}).Where("id = ?", orderID).Updates(map[string]interface{}{
		"production_status": status,
		"updated_by":        updatedBy,
	}).Error
}
