package domain

import "time"

// Review is learner feedback on a course.
type Review struct {
	ID         string    `json:"id"`
	UserName   string    `json:"userName"`
	CourseSlug string    `json:"courseSlug"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
