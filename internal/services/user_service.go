package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Register creates a user with a bcrypt-hashed password. The plaintext is
// never stored.
func (s *UserService) Register(req *dtos.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hash,
		Role:           models.RoleUser,
		IsActive:       true,
		Profile:        toJSON(req.Profile),
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and stamps the last login.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.DB.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns users, optionally filtered by active flag.
func (s *UserService) List(active *bool, skip, limit int) ([]models.User, error) {
	query := s.DB.Model(&models.User{})
	if active != nil {
		query = query.Where("is_active = ?", *active)
	}
	var users []models.User
	err := query.Order("id").Offset(skip).Limit(limit).Find(&users).Error
	return users, err
}

func (s *UserService) Update(id uint, req *dtos.UserUpdateRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != user.Email {
		var other models.User
		if err := s.DB.Where("email = ? AND id <> ?", *req.Email, id).First(&other).Error; err == nil {
			return nil, ErrDuplicateEmail
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Password != nil {
		if err := auth.ValidatePasswordStrength(*req.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hash
	}
	if req.Profile != nil {
		user.Profile = toJSON(req.Profile)
	}

	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate is the soft delete: the row stays, the active flag flips.
func (s *UserService) Deactivate(id uint) error {
	res := s.DB.Model(&models.User{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats counts the user's recorded activity across entities.
func (s *UserService) Stats(id uint) (*dtos.UserStats, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	stats := &dtos.UserStats{InteractionsByAction: map[string]int64{}}

	if err := s.DB.Model(&models.UserJobInteraction{}).Where("user_id = ?", id).Count(&stats.Interactions).Error; err != nil {
		return nil, err
	}

	rows := []struct {
		Action string
		Count  int64
	}{}
	if err := s.DB.Model(&models.UserJobInteraction{}).
		Select("action, count(*) as count").
		Where("user_id = ?", id).
		Group("action").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		stats.InteractionsByAction[r.Action] = r.Count
	}

	if err := s.DB.Model(&models.Application{}).Where("user_id = ?", id).Count(&stats.Applications).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.SearchHistory{}).Where("user_id = ?", id).Count(&stats.Searches).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.ScrapingJob{}).Where("user_id = ?", id).Count(&stats.ScrapingJobs).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
