package stubapi

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/course-admin/internal/config"
	"github.com/spec-kit/course-admin/internal/domain"
)

// account pairs an administrator record with its password hash.
type account struct {
	admin        domain.Administrator
	passwordHash string
}

// Store holds the fixture data served by the stub. Everything lives in
// memory and resets on restart.
type Store struct {
	mu sync.Mutex

	accounts      map[string]*account
	users         map[string]*domain.User
	courses       map[string]*domain.Course
	videos        map[string]*domain.Video
	categories    map[string]*domain.VideoCategory
	payments      []domain.Payment
	reviews       map[string]*domain.Review
	companies     map[string]*domain.Company
	announcements map[string]*domain.Announcement
}

// NewStore seeds the fixtures, including the bootstrap administrator from
// configuration.
func NewStore(cfg config.StubConfig) (*Store, error) {
	s := &Store{
		accounts:      make(map[string]*account),
		users:         make(map[string]*domain.User),
		courses:       make(map[string]*domain.Course),
		videos:        make(map[string]*domain.Video),
		categories:    make(map[string]*domain.VideoCategory),
		reviews:       make(map[string]*domain.Review),
		companies:     make(map[string]*domain.Company),
		announcements: make(map[string]*domain.Announcement),
	}

	hash, err := HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	admin := domain.Administrator{
		ID:        uuid.NewString(),
		Email:     strings.ToLower(cfg.AdminEmail),
		IsAdmin:   true,
		AdminRole: domain.AdminRoleMain,
		Name:      "Platform",
		Surname:   "Admin",
	}
	s.accounts[admin.Email] = &account{admin: admin, passwordHash: hash}

	s.seedFixtures()
	return s, nil
}

func (s *Store) seedFixtures() {
	now := time.Now()

	for _, u := range []domain.User{
		{ID: uuid.NewString(), Name: "Ada", Surname: "Moreno", Email: "ada@example.com", Gender: "female", Status: domain.UserStatusActive, Plan: domain.UserPlanPremium, CreatedAt: now.AddDate(0, -3, 0)},
		{ID: uuid.NewString(), Name: "Bora", Surname: "Kaya", Email: "bora@example.com", Gender: "male", Status: domain.UserStatusActive, Plan: domain.UserPlanFree, CreatedAt: now.AddDate(0, -1, -4)},
		{ID: uuid.NewString(), Name: "Ceyda", Surname: "Aydin", Email: "ceyda@example.com", Gender: "female", Status: domain.UserStatusSuspended, Plan: domain.UserPlanFree, CreatedAt: now.AddDate(0, 0, -12)},
	} {
		u := u
		s.users[u.ID] = &u
	}

	course := domain.Course{
		ID: uuid.NewString(), Title: "Go for Backend Developers", Slug: "go-backend",
		Category: "programming", Price: 49.90, Published: true,
		CreatedAt: now.AddDate(0, -2, 0), UpdatedAt: now.AddDate(0, 0, -7),
	}
	s.courses[course.ID] = &course

	category := domain.VideoCategory{ID: uuid.NewString(), Name: "Fundamentals", Slug: "fundamentals"}
	s.categories[category.ID] = &category

	video := domain.Video{
		ID: uuid.NewString(), Title: "Interfaces in Practice",
		URL: "https://videos.example.com/interfaces.mp4", CategorySlug: category.Slug,
		DurationSec: 840, CreatedAt: now.AddDate(0, 0, -20),
	}
	s.videos[video.ID] = &video

	s.payments = []domain.Payment{
		{ID: uuid.NewString(), UserName: "Ada Moreno", Email: "ada@example.com", Amount: 49.90, Currency: "USD", Method: "card", Status: domain.PaymentStatusCompleted, Date: now.AddDate(0, 0, -9), CourseSlug: course.Slug},
	}

	review := domain.Review{
		ID: uuid.NewString(), UserName: "Ada Moreno", CourseSlug: course.Slug,
		Rating: 5, Comment: "Clear and practical.", CreatedAt: now.AddDate(0, 0, -5),
	}
	s.reviews[review.ID] = &review

	company := domain.Company{
		ID: uuid.NewString(), Name: "Acme Learning", ContactEmail: "hr@acme.example.com",
		IsActive: true, CreatedBy: domain.CompanyContact{Name: "Platform Admin", Email: "admin@videoadmin.com"},
		CreatedAt: now.AddDate(0, -6, 0),
	}
	s.companies[company.ID] = &company

	notice := domain.Announcement{
		ID: uuid.NewString(), Title: "Scheduled maintenance",
		Body: "The platform will be briefly unavailable on Sunday night.",
		IsActive: true, CreatedAt: now.AddDate(0, 0, -2),
	}
	s.announcements[notice.ID] = &notice
}

// Authenticate checks credentials and returns the administrator record.
func (s *Store) Authenticate(email, password string) (*domain.Administrator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[strings.ToLower(email)]
	if !ok || !CheckPassword(acc.passwordHash, password) {
		return nil, false
	}
	admin := acc.admin
	return &admin, true
}

// CreateAccount registers a new administrator. Self-service signups get the
// company role with no company attached until one claims them.
func (s *Store) CreateAccount(email, password, name, surname string, role domain.AdminRole, companyID *string, cost int) (*domain.Administrator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(email)
	if _, exists := s.accounts[email]; exists {
		return nil, errDuplicateEmail
	}

	hash, err := HashPassword(password, cost)
	if err != nil {
		return nil, err
	}
	admin := domain.Administrator{
		ID:        uuid.NewString(),
		Email:     email,
		IsAdmin:   true,
		AdminRole: role,
		CompanyID: companyID,
		Name:      name,
		Surname:   surname,
	}
	s.accounts[email] = &account{admin: admin, passwordHash: hash}
	return &admin, nil
}

// AdminByID resolves the administrator for a validated token subject.
func (s *Store) AdminByID(id string) (*domain.Administrator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.admin.ID == id {
			admin := acc.admin
			return &admin, true
		}
	}
	return nil, false
}

// UpdateAdmin changes an administrator's profile fields.
func (s *Store) UpdateAdmin(id, name, surname, image string) (*domain.Administrator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accounts {
		if acc.admin.ID == id {
			acc.admin.Name = name
			acc.admin.Surname = surname
			acc.admin.Image = image
			admin := acc.admin
			return &admin, true
		}
	}
	return nil, false
}

// Stats aggregates the landing screen numbers.
func (s *Store) Stats() domain.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.DashboardStats{
		TotalUsers:   len(s.users),
		TotalCourses: len(s.courses),
		TotalVideos:  len(s.videos),
	}
	for _, u := range s.users {
		if u.Plan == domain.UserPlanPremium {
			stats.PremiumUsers++
		}
	}
	for _, p := range s.payments {
		if p.Status == domain.PaymentStatusCompleted {
			stats.Revenue += p.Amount
		}
	}
	return stats
}

// ListUsers applies the users screen filters.
func (s *Store) ListUsers(search, gender, status, plan string) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	search = strings.ToLower(search)
	out := make([]domain.User, 0, len(s.users))
	for _, u := range s.users {
		if gender != "" && u.Gender != gender {
			continue
		}
		if status != "" && string(u.Status) != status {
			continue
		}
		if plan != "" && string(u.Plan) != plan {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(u.Name + " " + u.Surname + " " + u.Email)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, *u)
	}
	sortByCreated(out, func(u domain.User) time.Time { return u.CreatedAt })
	return out
}

// CreateUser adds a learner account.
func (s *Store) CreateUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	if u.Status == "" {
		u.Status = domain.UserStatusActive
	}
	if u.Plan == "" {
		u.Plan = domain.UserPlanFree
	}
	s.users[u.ID] = &u
	return u
}

// ToggleUserPremium flips a user between free and premium.
func (s *Store) ToggleUserPremium(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false
	}
	if u.Plan == domain.UserPlanPremium {
		u.Plan = domain.UserPlanFree
	} else {
		u.Plan = domain.UserPlanPremium
	}
	return true
}

// ToggleUserStatus flips a user between active and suspended.
func (s *Store) ToggleUserStatus(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return false
	}
	if u.Status == domain.UserStatusActive {
		u.Status = domain.UserStatusSuspended
	} else {
		u.Status = domain.UserStatusActive
	}
	return true
}

// DeleteUser removes a learner account.
func (s *Store) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false
	}
	delete(s.users, id)
	return true
}

// ListCourses returns the catalog, newest first.
func (s *Store) ListCourses() []domain.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Course, 0, len(s.courses))
	for _, c := range s.courses {
		out = append(out, *c)
	}
	sortByCreated(out, func(c domain.Course) time.Time { return c.CreatedAt })
	return out
}

// GetCourse returns one course.
func (s *Store) GetCourse(id string) (*domain.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return nil, false
	}
	course := *c
	return &course, true
}

// CreateCourse adds a course.
func (s *Store) CreateCourse(c domain.Course) domain.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.courses[c.ID] = &c
	return c
}

// UpdateCourse replaces a course's editable fields.
func (s *Store) UpdateCourse(id string, in domain.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.courses[id]
	if !ok {
		return false
	}
	c.Title = in.Title
	c.Slug = in.Slug
	c.Description = in.Description
	c.Category = in.Category
	c.Price = in.Price
	c.Published = in.Published
	c.UpdatedAt = time.Now()
	return true
}

// DeleteCourse removes a course.
func (s *Store) DeleteCourse(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return false
	}
	delete(s.courses, id)
	return true
}

// ListVideos returns all lessons, optionally narrowed to one category slug.
func (s *Store) ListVideos(categorySlug string) []domain.Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Video, 0, len(s.videos))
	for _, v := range s.videos {
		if categorySlug != "" && v.CategorySlug != categorySlug {
			continue
		}
		out = append(out, *v)
	}
	sortByCreated(out, func(v domain.Video) time.Time { return v.CreatedAt })
	return out
}

// CreateVideo registers lesson metadata.
func (s *Store) CreateVideo(v domain.Video) domain.Video {
	s.mu.Lock()
	defer s.mu.Unlock()

	v.ID = uuid.NewString()
	v.CreatedAt = time.Now()
	s.videos[v.ID] = &v
	return v
}

// DeleteVideo removes a lesson.
func (s *Store) DeleteVideo(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return false
	}
	delete(s.videos, id)
	return true
}

// ListCategories returns all video categories.
func (s *Store) ListCategories() []domain.VideoCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.VideoCategory, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CreateCategory adds a video category.
func (s *Store) CreateCategory(c domain.VideoCategory) domain.VideoCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	s.categories[c.ID] = &c
	return c
}

// DeleteCategory removes a video category.
func (s *Store) DeleteCategory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return false
	}
	delete(s.categories, id)
	return true
}

// ListPayments returns the ledger, newest first.
func (s *Store) ListPayments() []domain.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Payment, len(s.payments))
	copy(out, s.payments)
	sortByCreated(out, func(p domain.Payment) time.Time { return p.Date })
	return out
}

// ListReviews returns learner feedback, newest first.
func (s *Store) ListReviews() []domain.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Review, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, *r)
	}
	sortByCreated(out, func(r domain.Review) time.Time { return r.CreatedAt })
	return out
}

// DeleteReview removes a review.
func (s *Store) DeleteReview(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return false
	}
	delete(s.reviews, id)
	return true
}

// ListCompanies returns all partner companies.
func (s *Store) ListCompanies() []domain.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, *c)
	}
	sortByCreated(out, func(c domain.Company) time.Time { return c.CreatedAt })
	return out
}

// CompanyStats counts a company's members by scanning the learner base.
func (s *Store) CompanyStats(id string) (*domain.CompanyStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companies[id]; !ok {
		return nil, false
	}
	stats := domain.CompanyStats{}
	for _, u := range s.users {
		stats.TotalUsers++
		if u.Status == domain.UserStatusActive {
			stats.ActiveUsers++
		}
	}
	return &stats, true
}

// CreateCompany adds a partner company.
func (s *Store) CreateCompany(c domain.Company, createdBy domain.CompanyContact) domain.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	c.IsActive = true
	c.CreatedBy = createdBy
	c.CreatedAt = time.Now()
	s.companies[c.ID] = &c
	return c
}

// UpdateCompany replaces a company's editable fields.
func (s *Store) UpdateCompany(id string, in domain.Company) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return false
	}
	c.Name = in.Name
	c.Description = in.Description
	c.ContactEmail = in.ContactEmail
	c.ContactPhone = in.ContactPhone
	return true
}

// DeleteCompany removes a company.
func (s *Store) DeleteCompany(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.companies[id]; !ok {
		return false
	}
	delete(s.companies, id)
	return true
}

// ToggleCompany flips a company between active and inactive.
func (s *Store) ToggleCompany(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies[id]
	if !ok {
		return false
	}
	c.IsActive = !c.IsActive
	return true
}

// CompanyExists reports whether a company id is known.
func (s *Store) CompanyExists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.companies[id]
	return ok
}

// ListAnnouncements returns all notices, newest first.
func (s *Store) ListAnnouncements() []domain.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Announcement, 0, len(s.announcements))
	for _, a := range s.announcements {
		out = append(out, *a)
	}
	sortByCreated(out, func(a domain.Announcement) time.Time { return a.CreatedAt })
	return out
}

// CreateAnnouncement publishes a notice.
func (s *Store) CreateAnnouncement(a domain.Announcement) domain.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	a.IsActive = true
	a.CreatedAt = time.Now()
	s.announcements[a.ID] = &a
	return a
}

// ToggleAnnouncement flips a notice between active and inactive.
func (s *Store) ToggleAnnouncement(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.announcements[id]
	if !ok {
		return false
	}
	a.IsActive = !a.IsActive
	return true
}

// DeleteAnnouncement removes a notice.
func (s *Store) DeleteAnnouncement(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.announcements[id]; !ok {
		return false
	}
	delete(s.announcements, id)
	return true
}

func sortByCreated[T any](items []T, at func(T) time.Time) {
	sort.Slice(items, func(i, j int) bool { return at(items[i]).After(at(items[j])) })
}
