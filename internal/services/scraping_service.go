package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// ScrapingService manages scraper configuration records and run records.
// There is no fetch/parse engine behind them; sources describe how a future
// scraper would work (selectors, delay, page limits) and jobs record runs
// reported by external scraper accounts.
type ScrapingService struct {
	DB *gorm.DB
}

func NewScrapingService(db *gorm.DB) *ScrapingService {
	return &ScrapingService{DB: db}
}

func (s *ScrapingService) CreateSource(req *dtos.ScrapingSourceCreateRequest) (*models.ScrapingSource, error) {
	var existing models.ScrapingSource
	if err := s.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrDuplicateSource
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	source := &models.ScrapingSource{
		Name:         req.Name,
		BaseURL:      req.BaseURL,
		Description:  req.Description,
		IsActive:     true,
		Selectors:    toJSON(req.Selectors),
		Headers:      toJSON(req.Headers),
		DelaySeconds: 1.0,
		MaxPages:     10,
	}
	if req.IsActive != nil {
		source.IsActive = *req.IsActive
	}
	if req.DelaySeconds != 0 {
		source.DelaySeconds = req.DelaySeconds
	}
	if req.MaxPages != 0 {
		source.MaxPages = req.MaxPages
	}

	if err := s.DB.Create(source).Error; err != nil {
		return nil, err
	}
	return source, nil
}

func (s *ScrapingService) GetSource(id uint) (*models.ScrapingSource, error) {
	var source models.ScrapingSource
	if err := s.DB.First(&source, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &source, nil
}

func (s *ScrapingService) ListSources(active *bool) ([]models.ScrapingSource, error) {
	query := s.DB.Model(&models.ScrapingSource{})
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}
	var sources []models.ScrapingSource
	err := query.Order("name").Find(&sources).Error
	return sources, err
}

func (s *ScrapingService) UpdateSource(id uint, req *dtos.ScrapingSourceUpdateRequest) (*models.ScrapingSource, error) {
	source, err := s.GetSource(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != source.Name {
		var other models.ScrapingSource
		if err := s.DB.Where("name = ? AND id <> ?", *req.Name, id).First(&other).Error; err == nil {
			return nil, ErrDuplicateSource
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		source.Name = *req.Name
	}
	if req.BaseURL != nil {
		source.BaseURL = *req.BaseURL
	}
	if req.Description != nil {
		source.Description = *req.Description
	}
	if req.IsActive != nil {
		source.IsActive = *req.IsActive
	}
	if req.Selectors != nil {
		source.Selectors = toJSON(req.Selectors)
	}
	if req.Headers != nil {
		source.Headers = toJSON(req.Headers)
	}
	if req.DelaySeconds != nil {
		source.DelaySeconds = *req.DelaySeconds
	}
	if req.MaxPages != nil {
		source.MaxPages = *req.MaxPages
	}

	if err := s.DB.Save(source).Error; err != nil {
		return nil, err
	}
	return source, nil
}

// CreateJob records a scraping run request for an existing source, owned by
// the requesting user.
func (s *ScrapingService) CreateJob(userID uint, req *dtos.ScrapingJobCreateRequest) (*models.ScrapingJob, error) {
	source, err := s.GetSource(req.SourceID)
	if err != nil {
		return nil, err
	}

	job := &models.ScrapingJob{
		SourceID:        source.ID,
		UserID:          userID,
		SearchTerms:     toJSON(req.SearchTerms),
		LocationFilters: toJSON(req.LocationFilters),
		MaxResults:      100,
		Status:          models.ScrapingPending,
		ScheduledAt:     req.ScheduledAt,
	}
	if req.MaxResults != 0 {
		job.MaxResults = req.MaxResults
	}

	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	job.Source = *source
	return job, nil
}

func (s *ScrapingService) GetJob(id uint) (*models.ScrapingJob, error) {
	var job models.ScrapingJob
	if err := s.DB.Preload("Source").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// ListJobs filters by status and source; userID 0 means all users.
func (s *ScrapingService) ListJobs(userID uint, status string, sourceID uint, skip, limit int) ([]models.ScrapingJob, error) {
	query := s.DB.Preload("Source").Model(&models.ScrapingJob{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if sourceID != 0 {
		query = query.Where("source_id = ?", sourceID)
	}
	var jobs []models.ScrapingJob
	err := query.Order("created_at desc").Offset(skip).Limit(limit).Find(&jobs).Error
	return jobs, err
}

// UpdateJobStatus writes the reported status and result fields. Moving to
// running stamps StartedAt once; completed and failed stamp CompletedAt.
// Completed runs also bump the source's scrape counters.
func (s *ScrapingService) UpdateJobStatus(id uint, req *dtos.ScrapingJobStatusUpdate) (*models.ScrapingJob, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job.Status = models.ScrapingStatus(req.Status)
	switch job.Status {
	case models.ScrapingRunning:
		if job.StartedAt == nil {
			job.StartedAt = &now
		}
	case models.ScrapingCompleted, models.ScrapingFailed:
		job.CompletedAt = &now
	}

	if req.ResultsFound != nil {
		job.ResultsFound = *req.ResultsFound
	}
	if req.ResultsSaved != nil {
		job.ResultsSaved = *req.ResultsSaved
	}
	if req.ErrorMessage != nil {
		job.ErrorMessage = *req.ErrorMessage
	}

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}

	if job.Status == models.ScrapingCompleted && job.ResultsSaved > 0 {
		err := s.DB.Model(&models.ScrapingSource{}).
			Where("id = ?", job.SourceID).
			Updates(map[string]any{
				"total_jobs_scraped": gorm.Expr("total_jobs_scraped + ?", job.ResultsSaved),
				"last_scrape_at":     now,
			}).Error
		if err != nil {
			return nil, err
		}
	}
	return job, nil
}
