package domain

// AdminRole scopes an administrator to the whole platform or one partner company.
type AdminRole string

const (
	AdminRoleMain    AdminRole = "main"
	AdminRoleCompany AdminRole = "company"
)

// Administrator is the authenticated operator of the dashboard.
type Administrator struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	AdminRole AdminRole `json:"adminRole,omitempty"`
	CompanyID *string   `json:"companyId,omitempty"`
	Name      string    `json:"name,omitempty"`
	Surname   string    `json:"surname,omitempty"`
	Image     string    `json:"image,omitempty"`
}

// IsMain reports whether the administrator operates the whole platform.
// Records predating role scoping carry no role and are treated as main.
func (a Administrator) IsMain() bool {
	return a.AdminRole == AdminRoleMain || a.AdminRole == ""
}
