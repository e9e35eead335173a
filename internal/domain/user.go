package domain

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Password   string `json:"password,omitempty"`
	Role       Role   `json:"role"`
	// FiveDigitID is the customer-facing login id, e.g. "59201".
	// Empty for admins.
	FiveDigitID string `json:"fiveDigitId,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
