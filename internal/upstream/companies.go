package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// CompanyInput payload for creating or updating a partner company.
type CompanyInput struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// CreateCompanyAdminRequest registers a company-scoped administrator.
type CreateCompanyAdminRequest struct {
	CompanyID string `json:"companyId"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
}

// ListCompanies fetches all partner companies.
func (c *Client) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var resp struct {
		Data []domain.Company `json:"data"`
	}
	if err := c.get(ctx, "/companies", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CompanyStats fetches member aggregates for one company.
func (c *Client) CompanyStats(ctx context.Context, id string) (*domain.CompanyStats, error) {
	var resp struct {
		Data domain.CompanyStats `json:"data"`
	}
	if err := c.get(ctx, "/companies/"+id+"/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateCompany adds a partner company.
func (c *Client) CreateCompany(ctx context.Context, input CompanyInput) error {
	return c.post(ctx, "/companies", input, nil)
}

// UpdateCompany replaces a company's editable fields.
func (c *Client) UpdateCompany(ctx context.Context, id string, input CompanyInput) error {
	return c.put(ctx, "/companies/"+id, input, nil)
}

// DeleteCompany removes a company.
func (c *Client) DeleteCompany(ctx context.Context, id string) error {
	return c.delete(ctx, "/companies/"+id)
}

// ToggleCompanyStatus flips a company between active and inactive.
func (c *Client) ToggleCompanyStatus(ctx context.Context, id string) error {
	return c.patch(ctx, "/companies/toggle/"+id, nil, nil)
}

// CreateCompanyAdmin registers a company-scoped administrator account.
func (c *Client) CreateCompanyAdmin(ctx context.Context, req CreateCompanyAdminRequest) error {
	return c.post(ctx, "/companies/admins", req, nil)
}
