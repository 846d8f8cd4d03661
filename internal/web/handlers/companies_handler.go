package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/domain"
	"github.com/spec-kit/course-admin/internal/upstream"
)

// CompaniesHandler serves the partner company screens. The route guard
// already restricts these to main-platform operators.
type CompaniesHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewCompaniesHandler constructs handler.
func NewCompaniesHandler(client *upstream.Client, log *zap.Logger) *CompaniesHandler {
	return &CompaniesHandler{client: client, log: log}
}

type companyRow struct {
	Company domain.Company
	Stats   *domain.CompanyStats
}

// Index GET /companies. Stats are fetched per company; a failed stats call
// leaves that row without aggregates rather than failing the screen.
func (h *CompaniesHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	data := screenData(c, store, nil)
	client := h.client.Authed(store.Credential())
	companies, err := client.ListCompanies(c.UserContext())
	if err != nil {
		return failScreen(c, "companies", data, err)
	}

	rows := make([]companyRow, 0, len(companies))
	for _, company := range companies {
		row := companyRow{Company: company}
		stats, err := client.CompanyStats(c.UserContext(), company.ID)
		if err != nil {
			if upstream.IsUnauthorized(err) {
				return failScreen(c, "companies", data, err)
			}
			h.log.Warn("company stats unavailable",
				zap.String("company_id", company.ID), zap.Error(err))
		} else {
			row.Stats = stats
		}
		rows = append(rows, row)
	}

	data["Companies"] = rows
	return c.Render("companies", data, mainLayout)
}

// Create POST /companies.
func (h *CompaniesHandler) Create(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	form, ferr := parseCompanyForm(c)
	if ferr != "" {
		return c.Redirect("/companies?flash="+url.QueryEscape(ferr), fiber.StatusSeeOther)
	}
	if err := h.client.Authed(store.Credential()).CreateCompany(c.UserContext(), companyInput(form)); err != nil {
		return failRedirect(c, "/companies", err)
	}
	return c.Redirect("/companies", fiber.StatusSeeOther)
}

// Update POST /companies/:id.
func (h *CompaniesHandler) Update(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	form, ferr := parseCompanyForm(c)
	if ferr != "" {
		return c.Redirect("/companies?flash="+url.QueryEscape(ferr), fiber.StatusSeeOther)
	}
	if err := h.client.Authed(store.Credential()).UpdateCompany(c.UserContext(), c.Params("id"), companyInput(form)); err != nil {
		return failRedirect(c, "/companies", err)
	}
	return c.Redirect("/companies", fiber.StatusSeeOther)
}

// Delete POST /companies/:id/delete.
func (h *CompaniesHandler) Delete(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).DeleteCompany(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/companies", err)
	}
	return c.Redirect("/companies", fiber.StatusSeeOther)
}

// ToggleStatus POST /companies/:id/toggle.
func (h *CompaniesHandler) ToggleStatus(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).ToggleCompanyStatus(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/companies", err)
	}
	return c.Redirect("/companies", fiber.StatusSeeOther)
}

// CreateAdmin POST /companies/:id/admins.
func (h *CompaniesHandler) CreateAdmin(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	var form CompanyAdminForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/companies?flash="+url.QueryEscape("invalid form"), fiber.StatusSeeOther)
	}
	if err := validate.Struct(form); err != nil {
		return c.Redirect("/companies?flash="+url.QueryEscape(formMessage(err)), fiber.StatusSeeOther)
	}

	err = h.client.Authed(store.Credential()).CreateCompanyAdmin(c.UserContext(), upstream.CreateCompanyAdminRequest{
		CompanyID: c.Params("id"),
		Email:     form.Email,
		Password:  form.Password,
		Name:      form.Name,
		Surname:   form.Surname,
	})
	if err != nil {
		return failRedirect(c, "/companies", err)
	}
	return c.Redirect("/companies", fiber.StatusSeeOther)
}

func parseCompanyForm(c *fiber.Ctx) (CompanyForm, string) {
	var form CompanyForm
	if err := c.BodyParser(&form); err != nil {
		return form, "invalid form"
	}
	if err := validate.Struct(form); err != nil {
		return form, formMessage(err)
	}
	return form, ""
}

func companyInput(form CompanyForm) upstream.CompanyInput {
	return upstream.CompanyInput{
		Name:         form.Name,
		Description:  form.Description,
		ContactEmail: form.ContactEmail,
		ContactPhone: form.ContactPhone,
	}
}
