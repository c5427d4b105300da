package model

// CalculationMethod determines how a line item's price is derived from
// the product's unit price.
type CalculationMethod string

const (
	// CalcUnit prices per piece: price * quantity
	CalcUnit CalculationMethod = "UNIT"
	// CalcPackage prices per bundle, same arithmetic as per piece
	CalcPackage CalculationMethod = "PACKAGE"
	// CalcDimension prices per area: width * height * price * quantity
	CalcDimension CalculationMethod = "DIMENSION"
)

// Product is a catalog entry. Orders snapshot the name and computed line
// price at submission time, so editing or deleting a product never
// changes past orders.
type Product struct {
	BaseModel
	Name              string            `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price             int64             `gorm:"default:0" json:"price" validate:"gte=0"`
	CalculationMethod CalculationMethod `gorm:"type:varchar(20);not null;default:'UNIT'" json:"calculation_method" validate:"required,oneof=UNIT PACKAGE DIMENSION"`
}
