package domain

import "time"

// Video is a single lesson hosted by the platform's video storage.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	CategorySlug string    `json:"categorySlug,omitempty"`
	DurationSec  int       `json:"durationSec,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// VideoCategory groups videos on the videos screen.
type VideoCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
