package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/upstream"
)

// CoursesHandler serves the course catalog screens.
type CoursesHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(client *upstream.Client, log *zap.Logger) *CoursesHandler {
	return &CoursesHandler{client: client, log: log}
}

// Index GET /courses.
func (h *CoursesHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	data := screenData(c, store, nil)
	courses, err := h.client.Authed(store.Credential()).ListCourses(c.UserContext())
	if err != nil {
		return failScreen(c, "courses", data, err)
	}
	data["Courses"] = courses
	return c.Render("courses", data, mainLayout)
}

// Create POST /courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	form, ferr := parseCourseForm(c)
	if ferr != "" {
		return c.Redirect("/courses?flash="+url.QueryEscape(ferr), fiber.StatusSeeOther)
	}
	if err := h.client.Authed(store.Credential()).CreateCourse(c.UserContext(), courseInput(form)); err != nil {
		return failRedirect(c, "/courses", err)
	}
	return c.Redirect("/courses", fiber.StatusSeeOther)
}

// Edit GET /courses/:id.
func (h *CoursesHandler) Edit(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	data := screenData(c, store, nil)
	course, err := h.client.Authed(store.Credential()).GetCourse(c.UserContext(), c.Params("id"))
	if err != nil {
		return failScreen(c, "course_edit", data, err)
	}
	data["Course"] = course
	return c.Render("course_edit", data, mainLayout)
}

// Update POST /courses/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	id := c.Params("id")
	form, ferr := parseCourseForm(c)
	if ferr != "" {
		return c.Redirect("/courses/"+id+"?flash="+url.QueryEscape(ferr), fiber.StatusSeeOther)
	}
	if err := h.client.Authed(store.Credential()).UpdateCourse(c.UserContext(), id, courseInput(form)); err != nil {
		return failRedirect(c, "/courses/"+id, err)
	}
	return c.Redirect("/courses", fiber.StatusSeeOther)
}

// Delete POST /courses/:id/delete.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).DeleteCourse(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/courses", err)
	}
	return c.Redirect("/courses", fiber.StatusSeeOther)
}

func parseCourseForm(c *fiber.Ctx) (CourseForm, string) {
	var form CourseForm
	if err := c.BodyParser(&form); err != nil {
		return form, "invalid form"
	}
	if err := validate.Struct(form); err != nil {
		return form, formMessage(err)
	}
	return form, ""
}

func courseInput(form CourseForm) upstream.CourseInput {
	return upstream.CourseInput{
		Title:       form.Title,
		Slug:        form.Slug,
		Description: form.Description,
		Category:    form.Category,
		Price:       form.Price,
		Published:   form.Published,
	}
}
