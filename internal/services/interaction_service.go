package services

import (
	"gorm.io/gorm"

	"jobboard/internal/models"
)

// Actions a user can record against a job offer.
const (
	ActionViewed     = "viewed"
	ActionSaved      = "saved"
	ActionApplied    = "applied"
	ActionRejected   = "rejected"
	ActionInterested = "interested"
)

type InteractionService struct {
	DB *gorm.DB
}

func NewInteractionService(db *gorm.DB) *InteractionService {
	return &InteractionService{DB: db}
}

// Record appends an interaction row. Every call is a new row; "viewed" twice
// means viewed twice.
func (s *InteractionService) Record(userID, jobID uint, action string, metadata map[string]any) (*models.UserJobInteraction, error) {
	interaction := &models.UserJobInteraction{
		UserID:     userID,
		JobOfferID: jobID,
		Action:     action,
		Metadata:   toJSON(metadata),
	}
	if err := s.DB.Create(interaction).Error; err != nil {
		return nil, err
	}
	return interaction, nil
}

func (s *InteractionService) ListByUser(userID uint, action string, skip, limit int) ([]models.UserJobInteraction, error) {
	query := s.DB.Where("user_id = ?", userID)
	if action != "" {
		query = query.Where("action = ?", action)
	}
	var interactions []models.UserJobInteraction
	err := query.Order("created_at desc").Offset(skip).Limit(limit).Find(&interactions).Error
	return interactions, err
}

// RecordSearch keeps the query, applied filters and hit count for later
// popular-search stats.
func (s *InteractionService) RecordSearch(userID uint, query string, filters any, resultCount int64) error {
	entry := &models.SearchHistory{
		UserID:      userID,
		Query:       query,
		Filters:     toJSON(filters),
		ResultCount: int(resultCount),
	}
	return s.DB.Create(entry).Error
}

func (s *InteractionService) SearchHistoryByUser(userID uint, skip, limit int) ([]models.SearchHistory, error) {
	var history []models.SearchHistory
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(skip).Limit(limit).
		Find(&history).Error
	return history, err
}
