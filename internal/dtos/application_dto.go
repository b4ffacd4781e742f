package dtos

type ApplicationCreateRequest struct {
	JobOfferID uint   `json:"job_offer_id" binding:"required,gt=0"`
	Notes      string `json:"notes"`
}

type ApplicationUpdateRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending applied interviewing rejected accepted"`
	Notes  *string `json:"notes"`
}
