package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "UNPAID"
	PaymentPaid   PaymentStatus = "PAID"
)

type ProductionStatus string

const (
	ProductionDesignQueue    ProductionStatus = "DESIGN_QUEUE"
	ProductionPrinting       ProductionStatus = "PRINTING"
	ProductionReadyForPickup ProductionStatus = "READY_FOR_PICKUP"
	ProductionDone           ProductionStatus = "DONE"
)

// ProductionStatuses lists every fulfillment stage. Transitions between
// them are free-form: any viewer may set any stage directly, there is no
// enforced ordering.
var ProductionStatuses = []ProductionStatus{
	ProductionDesignQueue,
	ProductionPrinting,
	ProductionReadyForPickup,
	ProductionDone,
}

func (s ProductionStatus) Valid() bool {
	for _, known := range ProductionStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PayCash     PaymentMethod = "CASH"
	PayTransfer PaymentMethod = "TRANSFER"
)

// Order is a customer order. Totals are stored at submission time, not
// recomputed from the catalog, so later price changes leave them intact.
// OrderNo is the 6-digit number printed on receipts; it is random and
// not guaranteed unique (lookups take the first match).
type Order struct {
	BaseModel
	OrderNo       string `gorm:"type:varchar(6);index;not null" json:"order_no"`
	CustomerName  string `gorm:"type:varchar(255);not null" json:"customer_name" validate:"required"`
	CustomerPhone string `gorm:"type:varchar(20);not null;index" json:"customer_phone" validate:"required"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`

	Subtotal      int64  `gorm:"not null" json:"subtotal"`
	Discount      int64  `gorm:"default:0" json:"discount"`
	DiscountNote  string `gorm:"type:varchar(255)" json:"discount_note"`
	OtherFees     int64  `gorm:"default:0" json:"other_fees"`
	OtherFeesNote string `gorm:"type:varchar(255)" json:"other_fees_note"`
	TotalCost     int64  `gorm:"not null" json:"total_cost"`

	PaidAmount    int64           `gorm:"default:0" json:"paid_amount"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(10);not null;default:'UNPAID'" json:"payment_status"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(10)" json:"payment_method"`
	Payments      []PaymentRecord `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments"`

	ProductionStatus ProductionStatus `gorm:"type:varchar(20);not null;default:'DESIGN_QUEUE'" json:"production_status"`

	// Creator snapshot
	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	CreatedByName   string  `gorm:"type:varchar(100)" json:"created_by_name"`
}

// OrderItem is one product entry within an order. ProductID is a plain
// string with no FK constraint: the product may be deleted later, and
// the stored name/price snapshot keeps the line renderable.
type OrderItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID   string    `gorm:"type:varchar(255);not null" json:"product_id" validate:"required"`
	ProductName string    `gorm:"type:varchar(255)" json:"product_name"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	Width       float64   `gorm:"default:0" json:"width"`
	Height      float64   `gorm:"default:0" json:"height"`
	Note        string    `gorm:"type:varchar(255)" json:"note"`
	LinePrice   int64     `gorm:"not null" json:"line_price"`
}

// PaymentRecord is one settlement entry. Rows are append-only: never
// updated or deleted once written.
type PaymentRecord struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	OrderID          uuid.UUID     `gorm:"type:uuid;not null;index" json:"order_id"`
	Amount           int64         `gorm:"not null" json:"amount"`
	Method           PaymentMethod `gorm:"type:varchar(10);not null" json:"method"`
	RecordedByUserID string        `gorm:"type:varchar(255)" json:"recorded_by_user_id"`
	RecordedByName   string        `gorm:"type:varchar(100)" json:"recorded_by_name"`
	PaidAt           time.Time     `gorm:"not null" json:"paid_at"`
}

// CanEditOrder applies the edit gate: owner and supervisor may always
// edit; everyone else only while the order is not fully paid.
func CanEditOrder(roleCode string, status PaymentStatus) bool {
	if roleCode == RoleOwner || roleCode == RoleSupervisor {
		return true
	}
	return status != PaymentPaid
}

// PaymentStatusFor derives the payment status from amounts: PAID exactly
// when the paid amount covers the total.
func PaymentStatusFor(paidAmount, totalCost int64) PaymentStatus {
	if paidAmount >= totalCost {
		return PaymentPaid
	}
	return PaymentUnpaid
}

// RemainingBalance is the outstanding amount, floored at zero for
// display (overpayment shows as change, not negative debt).
func (o *Order) RemainingBalance() int64 {
	remaining := o.TotalCost - o.PaidAmount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Change is the overpaid amount, zero when the order is not overpaid.
func (o *Order) Change() int64 {
	change := o.PaidAmount - o.TotalCost
	if change < 0 {
		return 0
	}
	return change
}
