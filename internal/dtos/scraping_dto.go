package dtos

import "time"

type ScrapingSourceCreateRequest struct {
	Name         string            `json:"name" binding:"required,min=1,max=100"`
	BaseURL      string            `json:"base_url" binding:"required,url"`
	Description  string            `json:"description"`
	IsActive     *bool             `json:"is_active"`
	Selectors    map[string]string `json:"selectors"`
	Headers      map[string]string `json:"headers"`
	DelaySeconds float64           `json:"delay_seconds" binding:"omitempty,gte=0.1,lte=10"`
	MaxPages     int               `json:"max_pages" binding:"omitempty,gte=1,lte=100"`
}

type ScrapingSourceUpdateRequest struct {
	Name         *string           `json:"name" binding:"omitempty,min=1,max=100"`
	BaseURL      *string           `json:"base_url" binding:"omitempty,url"`
	Description  *string           `json:"description"`
	IsActive     *bool             `json:"is_active"`
	Selectors    map[string]string `json:"selectors"`
	Headers      map[string]string `json:"headers"`
	DelaySeconds *float64          `json:"delay_seconds" binding:"omitempty,gte=0.1,lte=10"`
	MaxPages     *int              `json:"max_pages" binding:"omitempty,gte=1,lte=100"`
}

type ScrapingJobCreateRequest struct {
	SourceID        uint       `json:"source_id" binding:"required,gt=0"`
	SearchTerms     []string   `json:"search_terms"`
	LocationFilters []string   `json:"location_filters"`
	MaxResults      int        `json:"max_results" binding:"omitempty,gte=1,lte=1000"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
}

// ScrapingJobStatusUpdate is reported by scraper accounts as a run
// progresses. Status writes are plain field updates with timestamp side
// effects, not a guarded state machine.
type ScrapingJobStatusUpdate struct {
	Status       string  `json:"status" binding:"required,oneof=pending running completed failed paused"`
	ResultsFound *int    `json:"results_found" binding:"omitempty,gte=0"`
	ResultsSaved *int    `json:"results_saved" binding:"omitempty,gte=0"`
	ErrorMessage *string `json:"error_message"`
}
