package dtos

import (
	"time"

	"jobboard/internal/models"
)

type JobCreateRequest struct {
	Title           string     `json:"title" binding:"required,min=5,max=255"`
	Description     string     `json:"description"`
	Location        string     `json:"location" binding:"omitempty,max=255"`
	Salary          float64    `json:"salary" binding:"omitempty,gte=0"`
	SourceURL       string     `json:"source_url" binding:"required,url"`
	CompanyID       uint       `json:"company_id" binding:"required,gt=0"`
	PublishedAt     *time.Time `json:"published_at"`
	Requirements    []string   `json:"requirements"`
	Benefits        []string   `json:"benefits"`
	Modality        string     `json:"modality" binding:"omitempty,oneof=remote onsite hybrid"`
	ContractType    string     `json:"contract_type" binding:"omitempty,oneof=permanent temporary freelance"`
	ExperienceLevel string     `json:"experience_level" binding:"omitempty,oneof=junior mid senior"`
}

type JobUpdateRequest struct {
	Title           *string  `json:"title" binding:"omitempty,min=5,max=255"`
	Description     *string  `json:"description"`
	Location        *string  `json:"location" binding:"omitempty,max=255"`
	Salary          *float64 `json:"salary" binding:"omitempty,gte=0"`
	Status          *string  `json:"status" binding:"omitempty,oneof=active expired filled draft"`
	Requirements    []string `json:"requirements"`
	Benefits        []string `json:"benefits"`
	Modality        *string  `json:"modality" binding:"omitempty,oneof=remote onsite hybrid"`
	ContractType    *string  `json:"contract_type" binding:"omitempty,oneof=permanent temporary freelance"`
	ExperienceLevel *string  `json:"experience_level" binding:"omitempty,oneof=junior mid senior"`
}

// JobSearchQuery binds the /jobs query string. Every filter is optional and
// applied as an independent AND predicate.
type JobSearchQuery struct {
	Query            string   `form:"q"`
	Locations        []string `form:"location"`
	SalaryMin        *float64 `form:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax        *float64 `form:"salary_max" binding:"omitempty,gte=0"`
	Modalities       []string `form:"modality"`
	ContractTypes    []string `form:"contract_type"`
	ExperienceLevels []string `form:"experience_level"`
	CompanyIDs       []uint   `form:"company_id"`
	ActiveOnly       *bool    `form:"active_only"`

	Page      int    `form:"page,default=1" binding:"omitempty,gte=1"`
	Size      int    `form:"size,default=20" binding:"omitempty,gte=1,lte=100"`
	SortBy    string `form:"sort_by,default=created_at" binding:"omitempty,oneof=created_at published_at salary title"`
	SortOrder string `form:"sort_order,default=desc" binding:"omitempty,oneof=asc desc"`
}

// JobListResponse is the paginated search envelope:
// pages == ceil(total/size).
type JobListResponse struct {
	Items []models.JobOffer `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
	Pages int               `json:"pages"`
}

// MatchAnalysis is the simulated profile-to-offer compatibility report.
type MatchAnalysis struct {
	Summary       string   `json:"summary"`
	MatchScore    int      `json:"match_score"` // 0..100
	MissingSkills []string `json:"missing_skills"`
}
