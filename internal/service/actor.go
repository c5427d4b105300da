package service

// Actor identifies who performs an operation, snapshotted from the JWT
// claims by the handlers.
type Actor struct {
	UserID   string
	Username string
	RoleCode string
}
