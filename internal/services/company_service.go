package services

import (
	"errors"

	"gorm.io/gorm"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

func (s *CompanyService) Create(req *dtos.CompanyCreateRequest) (*models.Company, error) {
	var existing models.Company
	if err := s.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, ErrDuplicateCompany
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	company := &models.Company{
		Name:        req.Name,
		Sector:      req.Sector,
		Website:     req.Website,
		Description: req.Description,
		Size:        req.Size,
		Location:    req.Location,
	}
	if err := s.DB.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Get(id uint) (*models.Company, error) {
	var company models.Company
	if err := s.DB.First(&company, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// List filters by sector and a case-insensitive name substring.
func (s *CompanyService) List(sector, search string, skip, limit int) ([]models.Company, error) {
	query := s.DB.Model(&models.Company{})
	if sector != "" {
		query = query.Where("sector = ?", sector)
	}
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	var companies []models.Company
	err := query.Order("name").Offset(skip).Limit(limit).Find(&companies).Error
	return companies, err
}

func (s *CompanyService) Update(id uint, req *dtos.CompanyUpdateRequest) (*models.Company, error) {
	company, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != company.Name {
		var other models.Company
		if err := s.DB.Where("name = ? AND id <> ?", *req.Name, id).First(&other).Error; err == nil {
			return nil, ErrDuplicateCompany
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		company.Name = *req.Name
	}
	if req.Sector != nil {
		company.Sector = *req.Sector
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Size != nil {
		company.Size = *req.Size
	}
	if req.Location != nil {
		company.Location = *req.Location
	}

	if err := s.DB.Save(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Delete(id uint) error {
	res := s.DB.Delete(&models.Company{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
