package model

// Expense is a simple ledger entry with no lifecycle beyond create and
// delete.
type Expense struct {
	BaseModel
	Description string `gorm:"type:varchar(255);not null" json:"description" validate:"required"`
	Cost        int64  `gorm:"not null" json:"cost" validate:"gte=0"`

	// Creator snapshot
	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	CreatedByName   string  `gorm:"type:varchar(100)" json:"created_by_name"`
}
