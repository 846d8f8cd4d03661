package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoginForm is the login screen payload.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// SignupForm is the registration payload; the password confirmation is
// checked locally, before anything reaches the platform API.
type SignupForm struct {
	Name            string `form:"name" validate:"required"`
	Surname         string `form:"surname" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"required,eqfield=Password"`
}

// ForgotPasswordForm requests a reset link.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

// CreateUserForm is the add-user modal payload.
type CreateUserForm struct {
	Name     string `form:"name" validate:"required"`
	Surname  string `form:"surname" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Gender   string `form:"gender"`
	Password string `form:"password" validate:"required,min=8"`
	Premium  bool   `form:"premium"`
}

// CourseForm is the course editor payload.
type CourseForm struct {
	Title       string  `form:"title" validate:"required"`
	Slug        string  `form:"slug" validate:"required"`
	Description string  `form:"description"`
	Category    string  `form:"category"`
	Price       float64 `form:"price" validate:"gte=0"`
	Published   bool    `form:"published"`
}

// VideoForm registers uploaded video metadata.
type VideoForm struct {
	Title        string `form:"title" validate:"required"`
	URL          string `form:"url" validate:"required,url"`
	CategorySlug string `form:"category_slug"`
	DurationSec  int    `form:"duration_sec" validate:"gte=0"`
}

// VideoCategoryForm creates a category.
type VideoCategoryForm struct {
	Name string `form:"name" validate:"required"`
	Slug string `form:"slug" validate:"required"`
}

// CompanyForm is the partner company payload.
type CompanyForm struct {
	Name         string `form:"name" validate:"required"`
	Description  string `form:"description"`
	ContactEmail string `form:"contact_email" validate:"omitempty,email"`
	ContactPhone string `form:"contact_phone"`
}

// CompanyAdminForm registers a company-scoped administrator.
type CompanyAdminForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	Name     string `form:"name" validate:"required"`
	Surname  string `form:"surname" validate:"required"`
}

// AnnouncementForm publishes a notice.
type AnnouncementForm struct {
	Title string `form:"title" validate:"required"`
	Body  string `form:"body" validate:"required"`
}

// ProfileForm updates the administrator's own record.
type ProfileForm struct {
	Name    string `form:"name" validate:"required"`
	Surname string `form:"surname" validate:"required"`
	Image   string `form:"image" validate:"omitempty,url"`
}

// formMessage turns the first validation failure into a screen message.
func formMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "email":
			return "enter a valid email address"
		case "url":
			return fmt.Sprintf("%s must be a valid URL", field)
		case "min":
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		case "eqfield":
			return "passwords do not match"
		case "gte":
			return fmt.Sprintf("%s must not be negative", field)
		}
		return fmt.Sprintf("%s is invalid", field)
	}
	return "invalid input"
}
