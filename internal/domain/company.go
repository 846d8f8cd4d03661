package domain

import "time"

// Company is a partner organization with its own scoped administrators.
type Company struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description,omitempty"`
	ContactEmail string         `json:"contactEmail,omitempty"`
	ContactPhone string         `json:"contactPhone,omitempty"`
	IsActive     bool           `json:"isActive"`
	CreatedBy    CompanyContact `json:"createdBy"`
	CreatedAt    time.Time      `json:"createdAt"`
}

// CompanyContact identifies who created a company record.
type CompanyContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CompanyStats summarizes member activity for one company.
type CompanyStats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
}
