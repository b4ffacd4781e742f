package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard/internal/dtos"
	"jobboard/internal/services"
)

type CompanyHandler struct {
	Companies *services.CompanyService
}

func NewCompanyHandler(companies *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{Companies: companies}
}

// Create is POST /companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dtos.CompanyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.Companies.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

// List is GET /companies (public).
func (h *CompanyHandler) List(c *gin.Context) {
	skip, limit := skipLimit(c)
	companies, err := h.Companies.List(c.Query("sector"), c.Query("search"), skip, limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// Get is GET /companies/:id (public).
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	company, err := h.Companies.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Update is PUT /companies/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dtos.CompanyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	company, err := h.Companies.Update(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

// Delete is DELETE /companies/:id (admin only, enforced by route middleware).
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Companies.Delete(id); err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "company deleted"})
}
