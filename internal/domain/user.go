package domain

import "time"

// UserStatus represents lifecycle states for a platform user.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// UserPlan distinguishes paying users from free ones.
type UserPlan string

const (
	UserPlanPremium UserPlan = "premium"
	UserPlanFree    UserPlan = "free"
)

// User is a learner account managed from the users screen.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Surname   string     `json:"surname"`
	Email     string     `json:"email"`
	Gender    string     `json:"gender,omitempty"`
	Status    UserStatus `json:"status"`
	Plan      UserPlan   `json:"plan"`
	CreatedAt time.Time  `json:"createdAt"`
}
