package model

// Permissions holds the six independent capabilities gating mutations.
type Permissions struct {
	Add              bool
	Edit             bool
	Delete           bool
	ChangeStatus     bool
	ManageCategories bool
	ManageUsers      bool
}

// AllPermissions returns a permission set with every capability granted.
func AllPermissions() Permissions {
	return Permissions{
		Add:              true,
		Edit:             true,
		Delete:           true,
		ChangeStatus:     true,
		ManageCategories: true,
		ManageUsers:      true,
	}
}

// User is an account that may act on the ledger. The password is an opaque
// secret compared by exact match; hashing belongs to a security collaborator.
type User struct {
	ID          string
	Username    string
	Password    string
	Permissions Permissions
}
