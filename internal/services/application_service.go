package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Create records a user's application for an offer. At most one row may
// exist per (user, offer); a second attempt fails with ErrAlreadyApplied.
func (s *ApplicationService) Create(userID uint, req *dtos.ApplicationCreateRequest) (*models.Application, error) {
	var offer models.JobOffer
	if err := s.DB.First(&offer, req.JobOfferID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var existing models.Application
	err := s.DB.Where("user_id = ? AND job_offer_id = ?", userID, req.JobOfferID).First(&existing).Error
	if err == nil {
		return nil, ErrAlreadyApplied
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	application := &models.Application{
		UserID:     userID,
		JobOfferID: req.JobOfferID,
		Status:     models.ApplicationPending,
		Notes:      req.Notes,
	}
	if err := s.DB.Create(application).Error; err != nil {
		return nil, err
	}
	application.JobOffer = offer
	return application, nil
}

func (s *ApplicationService) Get(id uint) (*models.Application, error) {
	var application models.Application
	if err := s.DB.Preload("JobOffer").Preload("JobOffer.Company").First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &application, nil
}

// List returns applications; userID 0 means all users (admin view).
func (s *ApplicationService) List(userID uint, status string, skip, limit int) ([]models.Application, error) {
	query := s.DB.Preload("JobOffer").Preload("JobOffer.Company").Model(&models.Application{})
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var applications []models.Application
	err := query.Order("created_at desc").Offset(skip).Limit(limit).Find(&applications).Error
	return applications, err
}

func (s *ApplicationService) Update(id uint, req *dtos.ApplicationUpdateRequest) (*models.Application, error) {
	application, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		application.Status = models.ApplicationStatus(*req.Status)
	}
	if req.Notes != nil {
		application.Notes = *req.Notes
	}

	if err := s.DB.Save(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

func (s *ApplicationService) Delete(id uint) error {
	res := s.DB.Delete(&models.Application{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
