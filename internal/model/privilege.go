package model

// Privilege represents a permission that can be assigned to users
type Privilege struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"` // e.g., "order:create"
	Name string `gorm:"type:varchar(100)" json:"name"`                     // e.g., "Create Order"
}

// Default privileges for the system
var DefaultPrivileges = []Privilege{
	// Dashboard
	{Code: "dashboard:view", Name: "View Dashboard"},
	// Orders
	{Code: "order:view", Name: "View Orders"},
	{Code: "order:create", Name: "Create Order"},
	{Code: "order:update", Name: "Update Order"},
	{Code: "order:delete", Name: "Delete Order"},
	{Code: "order:set_status", Name: "Update Production Status"},
	// Payments
	{Code: "payment:view", Name: "View Payments"},
	{Code: "payment:settle", Name: "Settle Payment"},
	// Customers
	{Code: "customer:view", Name: "View Customers"},
	// Expenses
	{Code: "expense:view", Name: "View Expenses"},
	{Code: "expense:create", Name: "Create Expense"},
	{Code: "expense:delete", Name: "Delete Expense"},
	// Reports
	{Code: "report:view", Name: "View Reports"},
	{Code: "report:export", Name: "Export Reports"},
	// Account management
	{Code: "account:manage", Name: "Manage Accounts"},
	// Product catalog
	{Code: "product:manage", Name: "Manage Products"},
	// Store settings
	{Code: "store:manage", Name: "Manage Store Settings"},
}

// RolePrivileges is the static role capability table. It drives both the
// privilege seeding at boot and, through RequirePrivilege, which routes
// each role may call. Every role can read the product catalog and store
// settings because the order form and receipts need them.
var RolePrivileges = map[string][]string{
	RoleCashier: {
		"dashboard:view",
		"order:view", "order:create", "order:update", "order:set_status",
		"payment:view", "payment:settle",
		"customer:view",
		"expense:view", "expense:create",
	},
	RoleDesigner: {
		"dashboard:view",
		"order:view", "order:create", "order:update", "order:set_status",
		"product:manage",
	},
	RoleSupervisor: {
		"dashboard:view",
		"order:view", "order:create", "order:update", "order:set_status", "order:delete",
		"customer:view",
		"expense:view", "expense:create", "expense:delete",
		"report:view", "report:export",
		"product:manage",
	},
	RoleOwner: {
		"dashboard:view",
		"order:view", "order:create", "order:update", "order:set_status", "order:delete",
		"payment:view", "payment:settle",
		"customer:view",
		"expense:view", "expense:create", "expense:delete",
		"report:view", "report:export",
		"account:manage",
		"product:manage",
		"store:manage",
	},
}
