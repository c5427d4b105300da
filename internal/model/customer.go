package model

// Customer is keyed by phone number. It is upserted on every order
// submission; the most recent submission wins field-wise.
type Customer struct {
	BaseModel
	Phone string `gorm:"type:varchar(20);uniqueIndex;not null" json:"phone" validate:"required"`
	Name  string `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
}
