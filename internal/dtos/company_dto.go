package dtos

type CompanyCreateRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Sector      string `json:"sector" binding:"omitempty,max=100"`
	Website     string `json:"website" binding:"omitempty,url"`
	Description string `json:"description"`
	Size        string `json:"size" binding:"omitempty,oneof=startup small medium large"`
	Location    string `json:"location"`
}

type CompanyUpdateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Sector      *string `json:"sector" binding:"omitempty,max=100"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Description *string `json:"description"`
	Size        *string `json:"size" binding:"omitempty,oneof=startup small medium large"`
	Location    *string `json:"location"`
}
