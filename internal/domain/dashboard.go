package domain

// DashboardStats feeds the landing screen's stat cards.
type DashboardStats struct {
	TotalUsers   int     `json:"totalUsers"`
	PremiumUsers int     `json:"premiumUsers"`
	TotalCourses int     `json:"totalCourses"`
	TotalVideos  int     `json:"totalVideos"`
	Revenue      float64 `json:"revenue"`
}
