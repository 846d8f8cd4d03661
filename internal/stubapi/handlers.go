package stubapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/config"
	"github.com/spec-kit/course-admin/internal/domain"
)

var errDuplicateEmail = errors.New("email already registered")

const adminKey = "stub_admin"

// Handlers implements the platform admin API surface the dashboard talks to.
type Handlers struct {
	store  *Store
	tokens *TokenManager
	cfg    config.StubConfig
	log    *zap.Logger
}

// NewHandlers constructs handlers.
func NewHandlers(store *Store, tokens *TokenManager, cfg config.StubConfig, log *zap.Logger) *Handlers {
	return &Handlers{store: store, tokens: tokens, cfg: cfg, log: log}
}

func dataResponse(c *fiber.Ctx, payload any) error {
	return c.JSON(fiber.Map{"data": payload})
}

func errorResponse(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{"code": code, "message": message},
	})
}

// RequireToken validates the bearer token and loads the caller.
func (h *Handlers) RequireToken(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, "Bearer ") {
		return errorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token")
	}

	claims, err := h.tokens.ParseToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return errorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "invalid or expired token")
	}
	admin, ok := h.store.AdminByID(claims.Subject)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "unknown administrator")
	}

	c.Locals(adminKey, admin)
	return c.Next()
}

// RequireMainRole restricts company management to main-platform operators.
func (h *Handlers) RequireMainRole(c *fiber.Ctx) error {
	admin, ok := c.Locals(adminKey).(*domain.Administrator)
	if !ok || !admin.IsMain() {
		return errorResponse(c, fiber.StatusForbidden, "FORBIDDEN", "main administrator role required")
	}
	return c.Next()
}

func currentAdmin(c *fiber.Ctx) *domain.Administrator {
	admin, _ := c.Locals(adminKey).(*domain.Administrator)
	return admin
}

// Login exchanges credentials for an identity and a signed token.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}

	admin, ok := h.store.Authenticate(req.Email, req.Password)
	if !ok {
		h.log.Info("login rejected", zap.String("email", req.Email))
		return errorResponse(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "email or password is incorrect")
	}

	token, _, err := h.tokens.GenerateToken(*admin)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not issue token")
	}
	return c.JSON(fiber.Map{"user": admin, "token": token})
}

// Signup registers a self-service administrator account.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Name     string `json:"name"`
		Surname  string `json:"surname"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if req.Email == "" || len(req.Password) < 8 {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "email and a password of 8+ characters are required")
	}

	admin, err := h.store.CreateAccount(req.Email, req.Password, req.Name, req.Surname, domain.AdminRoleCompany, nil, h.cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, errDuplicateEmail) {
			return errorResponse(c, fiber.StatusConflict, "DUPLICATE_EMAIL", "email already registered")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not create account")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": admin})
}

// PasswordReset pretends to start a reset flow. It always succeeds so the
// endpoint does not leak which addresses exist.
func (h *Handlers) PasswordReset(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	h.log.Info("password reset requested", zap.String("email", req.Email))
	return c.SendStatus(fiber.StatusAccepted)
}

// Profile returns the caller's own record.
func (h *Handlers) Profile(c *fiber.Ctx) error {
	return dataResponse(c, currentAdmin(c))
}

// UpdateProfile changes the caller's profile fields.
func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Surname string `json:"surname"`
		Image   string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}

	updated, ok := h.store.UpdateAdmin(currentAdmin(c).ID, req.Name, req.Surname, req.Image)
	if !ok {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "administrator not found")
	}
	return dataResponse(c, updated)
}

// Analytics returns the dashboard aggregates.
func (h *Handlers) Analytics(c *fiber.Ctx) error {
	return dataResponse(c, h.store.Stats())
}

// ListUsers applies query filters over the learner base.
func (h *Handlers) ListUsers(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListUsers(
		c.Query("search"), c.Query("gender"), c.Query("status"), c.Query("plan")))
}

// CreateUser adds a learner account.
func (h *Handlers) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Surname string `json:"surname"`
		Email   string `json:"email"`
		Gender  string `json:"gender"`
		Premium bool   `json:"premium"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}

	user := domain.User{Name: req.Name, Surname: req.Surname, Email: req.Email, Gender: req.Gender}
	if req.Premium {
		user.Plan = domain.UserPlanPremium
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": h.store.CreateUser(user)})
}

// ToggleUserPremium flips the premium flag.
func (h *Handlers) ToggleUserPremium(c *fiber.Ctx) error {
	if !h.store.ToggleUserPremium(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleUserStatus flips between active and suspended.
func (h *Handlers) ToggleUserStatus(c *fiber.Ctx) error {
	if !h.store.ToggleUserStatus(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteUser removes a learner account.
func (h *Handlers) DeleteUser(c *fiber.Ctx) error {
	if !h.store.DeleteUser(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "user not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCourses returns the catalog.
func (h *Handlers) ListCourses(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListCourses())
}

// GetCourse returns one course.
func (h *Handlers) GetCourse(c *fiber.Ctx) error {
	course, ok := h.store.GetCourse(c.Params("id"))
	if !ok {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "course not found")
	}
	return dataResponse(c, course)
}

// CreateCourse adds a course.
func (h *Handlers) CreateCourse(c *fiber.Ctx) error {
	var course domain.Course
	if err := c.BodyParser(&course); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": h.store.CreateCourse(course)})
}

// UpdateCourse replaces a course's editable fields.
func (h *Handlers) UpdateCourse(c *fiber.Ctx) error {
	var course domain.Course
	if err := c.BodyParser(&course); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if !h.store.UpdateCourse(c.Params("id"), course) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "course not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCourse removes a course.
func (h *Handlers) DeleteCourse(c *fiber.Ctx) error {
	if !h.store.DeleteCourse(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "course not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListVideos returns all lessons.
func (h *Handlers) ListVideos(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListVideos(""))
}

// ListCategoryVideos returns lessons in one category.
func (h *Handlers) ListCategoryVideos(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListVideos(c.Params("slug")))
}

// CreateVideo registers lesson metadata.
func (h *Handlers) CreateVideo(c *fiber.Ctx) error {
	var video domain.Video
	if err := c.BodyParser(&video); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": h.store.CreateVideo(video)})
}

// DeleteVideo removes a lesson.
func (h *Handlers) DeleteVideo(c *fiber.Ctx) error {
	if !h.store.DeleteVideo(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "video not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListVideoCategories returns all categories.
func (h *Handlers) ListVideoCategories(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListCategories())
}

// CreateVideoCategory adds a category.
func (h *Handlers) CreateVideoCategory(c *fiber.Ctx) error {
	var category domain.VideoCategory
	if err := c.BodyParser(&category); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": h.store.CreateCategory(category)})
}

// DeleteVideoCategory removes a category.
func (h *Handlers) DeleteVideoCategory(c *fiber.Ctx) error {
	if !h.store.DeleteCategory(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "category not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPayments returns the ledger.
func (h *Handlers) ListPayments(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListPayments())
}

// ListReviews returns learner feedback.
func (h *Handlers) ListReviews(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListReviews())
}

// DeleteReview removes a review.
func (h *Handlers) DeleteReview(c *fiber.Ctx) error {
	if !h.store.DeleteReview(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "review not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListCompanies returns all partner companies.
func (h *Handlers) ListCompanies(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListCompanies())
}

// CompanyStats returns member aggregates for one company.
func (h *Handlers) CompanyStats(c *fiber.Ctx) error {
	stats, ok := h.store.CompanyStats(c.Params("id"))
	if !ok {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "company not found")
	}
	return dataResponse(c, stats)
}

// CreateCompany adds a partner company.
func (h *Handlers) CreateCompany(c *fiber.Ctx) error {
	var company domain.Company
	if err := c.BodyParser(&company); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	admin := currentAdmin(c)
	createdBy := domain.CompanyContact{Name: admin.Name + " " + admin.Surname, Email: admin.Email}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": h.store.CreateCompany(company, createdBy)})
}

// UpdateCompany replaces a company's editable fields.
func (h *Handlers) UpdateCompany(c *fiber.Ctx) error {
	var company domain.Company
	if err := c.BodyParser(&company); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if !h.store.UpdateCompany(c.Params("id"), company) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "company not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteCompany removes a company.
func (h *Handlers) DeleteCompany(c *fiber.Ctx) error {
	if !h.store.DeleteCompany(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "company not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleCompany flips a company between active and inactive.
func (h *Handlers) ToggleCompany(c *fiber.Ctx) error {
	if !h.store.ToggleCompany(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "company not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateCompanyAdmin registers a company-scoped administrator.
func (h *Handlers) CreateCompanyAdmin(c *fiber.Ctx) error {
	var req struct {
		CompanyID string `json:"companyId"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Name      string `json:"name"`
		Surname   string `json:"surname"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	if !h.store.CompanyExists(req.CompanyID) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "company not found")
	}

	admin, err := h.store.CreateAccount(req.Email, req.Password, req.Name, req.Surname, domain.AdminRoleCompany, &req.CompanyID, h.cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, errDuplicateEmail) {
			return errorResponse(c, fiber.StatusConflict, "DUPLICATE_EMAIL", "email already registered")
		}
		return errorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "could not create account")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": admin})
}

// ListAnnouncements returns all notices.
func (h *Handlers) ListAnnouncements(c *fiber.Ctx) error {
	return dataResponse(c, h.store.ListAnnouncements())
}

// CreateAnnouncement publishes a notice.
func (h *Handlers) CreateAnnouncement(c *fiber.Ctx) error {
	var notice domain.Announcement
	if err := c.BodyParser(&notice); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "BAD_REQUEST", "malformed request body")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": h.store.CreateAnnouncement(notice)})
}

// ToggleAnnouncement flips a notice between active and inactive.
func (h *Handlers) ToggleAnnouncement(c *fiber.Ctx) error {
	if !h.store.ToggleAnnouncement(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "announcement not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteAnnouncement removes a notice.
func (h *Handlers) DeleteAnnouncement(c *fiber.Ctx) error {
	if !h.store.DeleteAnnouncement(c.Params("id")) {
		return errorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "announcement not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
