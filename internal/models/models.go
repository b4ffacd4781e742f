package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role controls what a user may do. Scrapers are machine accounts that are
// only allowed to report scraping-job progress.
type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RoleScraper Role = "scraper"
)

// JobStatus mirrors the job_offers.status column.
type JobStatus string

const (
	JobActive  JobStatus = "active"
	JobExpired JobStatus = "expired"
	JobFilled  JobStatus = "filled"
	JobDraft   JobStatus = "draft"
)

// ApplicationStatus mirrors the applications.status column.
type ApplicationStatus string

const (
	ApplicationPending      ApplicationStatus = "pending"
	ApplicationApplied      ApplicationStatus = "applied"
	ApplicationInterviewing ApplicationStatus = "interviewing"
	ApplicationRejected     ApplicationStatus = "rejected"
	ApplicationAccepted     ApplicationStatus = "accepted"
)

// ScrapingStatus mirrors the scraping_jobs.status column. Transitions are
// plain field writes; there is no guarded state machine here.
type ScrapingStatus string

const (
	ScrapingPending   ScrapingStatus = "pending"
	ScrapingRunning   ScrapingStatus = "running"
	ScrapingCompleted ScrapingStatus = "completed"
	ScrapingFailed    ScrapingStatus = "failed"
	ScrapingPaused    ScrapingStatus = "paused"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name           string `gorm:"not null" json:"name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`
	Role           Role   `gorm:"type:varchar(20);default:'user'" json:"role"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`

	// Free-form profile: skills, preferred locations, salary expectations...
	Profile datatypes.JSON `json:"profile,omitempty"`

	LastLogin *time.Time `json:"last_login,omitempty"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Sector      string `gorm:"index" json:"sector,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Size        string `json:"size,omitempty"` // startup, small, medium, large
	Location    string `json:"location,omitempty"`

	// 'omitempty' prevents infinite loops when fetching a Company -> Offers -> Company -> ...
	Offers []JobOffer `json:"offers,omitempty"`
}

type JobOffer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string  `gorm:"not null;index" json:"title"`
	Description string  `gorm:"type:text" json:"description,omitempty"`
	Location    string  `gorm:"index" json:"location,omitempty"`
	Salary      float64 `json:"salary,omitempty"`

	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	ScrapedAt   time.Time  `gorm:"autoCreateTime" json:"scraped_at"`

	// SourceURL is the dedup key: one row per posting URL.
	SourceURL string `gorm:"uniqueIndex;not null" json:"source_url"`

	Status          JobStatus      `gorm:"type:varchar(20);default:'active';index" json:"status"`
	Requirements    datatypes.JSON `json:"requirements,omitempty"`
	Benefits        datatypes.JSON `json:"benefits,omitempty"`
	Modality        string         `gorm:"index" json:"modality,omitempty"`         // remote, onsite, hybrid
	ContractType    string         `gorm:"index" json:"contract_type,omitempty"`    // permanent, temporary, freelance
	ExperienceLevel string         `gorm:"index" json:"experience_level,omitempty"` // junior, mid, senior

	CompanyID uint    `gorm:"not null;index" json:"company_id"`
	Company   Company `json:"company"`
}

// Application records a user's pursuit of one job offer. The composite
// unique index enforces at most one row per (user, offer) pair.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID     uint `gorm:"not null;uniqueIndex:idx_user_offer" json:"user_id"`
	JobOfferID uint `gorm:"not null;uniqueIndex:idx_user_offer" json:"job_offer_id"`

	Status ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes  string            `gorm:"type:text" json:"notes,omitempty"`

	JobOffer JobOffer `json:"job_offer,omitempty"`
}

// ScrapingSource is configuration for a scraper that is not implemented
// here: selectors, headers, delay and page limits are stored for future use.
type ScrapingSource struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	BaseURL     string `gorm:"not null" json:"base_url"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`

	Selectors    datatypes.JSON `json:"selectors,omitempty"` // CSS selectors
	Headers      datatypes.JSON `json:"headers,omitempty"`   // HTTP headers
	DelaySeconds float64        `gorm:"default:1" json:"delay_seconds"`
	MaxPages     int            `gorm:"default:10" json:"max_pages"`

	TotalJobsScraped int        `gorm:"default:0" json:"total_jobs_scraped"`
	LastScrapeAt     *time.Time `json:"last_scrape_at,omitempty"`
}

// ScrapingJob is the run record for one scraping request.
type ScrapingJob struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SourceID uint           `gorm:"not null;index" json:"source_id"`
	Source   ScrapingSource `json:"source,omitempty"`
	UserID   uint           `gorm:"index" json:"user_id"`

	SearchTerms     datatypes.JSON `json:"search_terms,omitempty"`
	LocationFilters datatypes.JSON `json:"location_filters,omitempty"`
	MaxResults      int            `gorm:"default:100" json:"max_results"`

	Status      ScrapingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ScheduledAt *time.Time     `json:"scheduled_at,omitempty"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`

	ResultsFound int    `gorm:"default:0" json:"results_found"`
	ResultsSaved int    `gorm:"default:0" json:"results_saved"`
	ErrorMessage string `gorm:"type:text" json:"error_message,omitempty"`
}

// UserJobInteraction is a timestamped user action against a job offer.
type UserJobInteraction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID     uint   `gorm:"not null;index" json:"user_id"`
	JobOfferID uint   `gorm:"not null;index" json:"job_offer_id"`
	Action     string `gorm:"not null;index" json:"action"` // viewed, saved, applied, rejected, interested

	Metadata datatypes.JSON `json:"metadata,omitempty"`
}

type SearchHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Query       string         `gorm:"not null;index" json:"query"`
	Filters     datatypes.JSON `json:"filters,omitempty"`
	ResultCount int            `gorm:"default:0" json:"result_count"`
}
