package dtos

// UserUpdateRequest carries the mutable user fields. Nil pointers mean
// "leave unchanged".
type UserUpdateRequest struct {
	Name     *string        `json:"name" binding:"omitempty,min=2,max=255"`
	Email    *string        `json:"email" binding:"omitempty,email"`
	Password *string        `json:"password" binding:"omitempty,min=8,max=100"`
	Profile  map[string]any `json:"profile"`
}

// UserStats summarizes one user's activity.
type UserStats struct {
	Interactions         int64            `json:"interactions"`
	InteractionsByAction map[string]int64 `json:"interactions_by_action"`
	Applications         int64            `json:"applications"`
	Searches             int64            `json:"searches"`
	ScrapingJobs         int64            `json:"scraping_jobs"`
}
