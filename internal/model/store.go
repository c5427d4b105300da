package model

// StoreSettings is a singleton row holding the receipt header fields.
// It is created with defaults on first read and updated field-wise.
type StoreSettings struct {
	BaseModel
	StoreName    string `gorm:"type:varchar(255)" json:"store_name"`
	Address      string `gorm:"type:varchar(255)" json:"address"`
	Phone        string `gorm:"type:varchar(20)" json:"phone"`
	ReceiptNotes string `gorm:"type:text" json:"receipt_notes"`
	LogoURL      string `gorm:"type:text" json:"logo_url"` // http URL or data-URL from logo upload
}

// DefaultStoreSettings seeds the singleton when no row exists yet.
var DefaultStoreSettings = StoreSettings{
	StoreName:    "Your Printing Store",
	Address:      "Jl. Contoh No. 123",
	Phone:        "081234567890",
	ReceiptNotes: "Thank you for your visit!",
	LogoURL:      "",
}
