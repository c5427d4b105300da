package model

// Role represents user roles in the system
type Role struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Code        string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // CASHIER, DESIGNER, SUPERVISOR, OWNER
	Name        string      `gorm:"type:varchar(100)" json:"name"`
	Description string      `gorm:"type:text" json:"description"`
	Privileges  []Privilege `gorm:"many2many:role_privileges;" json:"privileges,omitempty"`
}

// Role codes as constants
const (
	RoleCashier    = "CASHIER"
	RoleDesigner   = "DESIGNER"
	RoleSupervisor = "SUPERVISOR"
	RoleOwner      = "OWNER"
)

// DefaultRoles defines the default roles in the system
var DefaultRoles = []Role{
	{
		Code:        RoleCashier,
		Name:        "Cashier",
		Description: "Order intake, payments, customers and expense logging",
	},
	{
		Code:        RoleDesigner,
		Name:        "Designer",
		Description: "Order queue and product catalog management",
	},
	{
		Code:        RoleSupervisor,
		Name:        "Supervisor",
		Description: "Order oversight, reporting and catalog management",
	},
	{
		Code:        RoleOwner,
		Name:        "Owner",
		Description: "Full store access including accounts and store settings",
	},
}
