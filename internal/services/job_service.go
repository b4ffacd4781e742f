package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// sortColumns is the whitelist of sortable fields; anything else is
// rejected before the query is built.
var sortColumns = map[string]string{
	"created_at":   "created_at",
	"published_at": "published_at",
	"salary":       "salary",
	"title":        "title",
}

var ErrBadSortField = errors.New("sort field is not allowed")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// Create inserts a job offer. The source URL is the dedup key: when a row
// with the same URL already exists that row is returned instead, with
// created=false so the handler can answer 200 rather than 201.
func (s *JobService) Create(req *dtos.JobCreateRequest) (*models.JobOffer, bool, error) {
	var company models.Company
	if err := s.DB.First(&company, req.CompanyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}

	var existing models.JobOffer
	err := s.DB.Preload("Company").Where("source_url = ?", req.SourceURL).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	offer := &models.JobOffer{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Salary:          req.Salary,
		SourceURL:       req.SourceURL,
		CompanyID:       req.CompanyID,
		PublishedAt:     req.PublishedAt,
		Status:          models.JobActive,
		Requirements:    toJSON(req.Requirements),
		Benefits:        toJSON(req.Benefits),
		Modality:        req.Modality,
		ContractType:    req.ContractType,
		ExperienceLevel: req.ExperienceLevel,
	}
	if err := s.DB.Create(offer).Error; err != nil {
		return nil, false, err
	}
	offer.Company = company
	return offer, true, nil
}

func (s *JobService) Get(id uint) (*models.JobOffer, error) {
	var offer models.JobOffer
	if err := s.DB.Preload("Company").First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &offer, nil
}

// Search applies every present filter as an independent AND predicate and
// paginates the result. pages == ceil(total/size).
func (s *JobService) Search(q *dtos.JobSearchQuery) (*dtos.JobListResponse, error) {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		return nil, ErrBadSortField
	}

	query := s.DB.Model(&models.JobOffer{})

	if q.Query != "" {
		pattern := "%" + q.Query + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if len(q.Locations) > 0 {
		query = query.Where("location IN ?", q.Locations)
	}
	if q.SalaryMin != nil {
		query = query.Where("salary >= ?", *q.SalaryMin)
	}
	if q.SalaryMax != nil {
		query = query.Where("salary <= ?", *q.SalaryMax)
	}
	if len(q.Modalities) > 0 {
		query = query.Where("modality IN ?", q.Modalities)
	}
	if len(q.ContractTypes) > 0 {
		query = query.Where("contract_type IN ?", q.ContractTypes)
	}
	if len(q.ExperienceLevels) > 0 {
		query = query.Where("experience_level IN ?", q.ExperienceLevels)
	}
	if len(q.CompanyIDs) > 0 {
		query = query.Where("company_id IN ?", q.CompanyIDs)
	}
	if q.ActiveOnly == nil || *q.ActiveOnly {
		query = query.Where("status = ?", models.JobActive)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.JobOffer
	err := query.
		Preload("Company").
		Order(fmt.Sprintf("%s %s", column, q.SortOrder)).
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(q.Size) - 1) / int64(q.Size))
	return &dtos.JobListResponse{
		Items: items,
		Total: total,
		Page:  q.Page,
		Size:  q.Size,
		Pages: pages,
	}, nil
}

// Recent returns active offers published within the last N days.
func (s *JobService) Recent(days, limit int) ([]models.JobOffer, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	var offers []models.JobOffer
	err := s.DB.Preload("Company").
		Where("status = ? AND published_at >= ?", models.JobActive, cutoff).
		Order("published_at desc").
		Limit(limit).
		Find(&offers).Error
	return offers, err
}

func (s *JobService) Update(id uint, req *dtos.JobUpdateRequest) (*models.JobOffer, error) {
	offer, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		offer.Title = *req.Title
	}
	if req.Description != nil {
		offer.Description = *req.Description
	}
	if req.Location != nil {
		offer.Location = *req.Location
	}
	if req.Salary != nil {
		offer.Salary = *req.Salary
	}
	if req.Status != nil {
		offer.Status = models.JobStatus(*req.Status)
	}
	if req.Requirements != nil {
		offer.Requirements = toJSON(req.Requirements)
	}
	if req.Benefits != nil {
		offer.Benefits = toJSON(req.Benefits)
	}
	if req.Modality != nil {
		offer.Modality = *req.Modality
	}
	if req.ContractType != nil {
		offer.ContractType = *req.ContractType
	}
	if req.ExperienceLevel != nil {
		offer.ExperienceLevel = *req.ExperienceLevel
	}

	if err := s.DB.Save(offer).Error; err != nil {
		return nil, err
	}
	return offer, nil
}

func (s *JobService) Delete(id uint) error {
	res := s.DB.Delete(&models.JobOffer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ExpireOlderThan marks active offers published before the cutoff as
// expired. Used by the maintenance sweep; returns the number of rows moved.
func (s *JobService) ExpireOlderThan(cutoff time.Time) (int64, error) {
	res := s.DB.Model(&models.JobOffer{}).
		Where("status = ? AND published_at < ?", models.JobActive, cutoff).
		Update("status", models.JobExpired)
	return res.RowsAffected, res.Error
}
