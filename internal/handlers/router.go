package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobboard/internal/auth"
	"jobboard/internal/models"
)

// Handlers bundles every resource handler for route registration.
type Handlers struct {
	Auth         *AuthHandler
	Users        *UserHandler
	Companies    *CompanyHandler
	Jobs         *JobHandler
	Applications *ApplicationHandler
	Scraping     *ScrapingHandler
	Stats        *StatsHandler
}

// RegisterRoutes mounts the full /api/v1 surface on the given engine.
// Public routes come first; everything else goes through RequireAuth, with
// RequireRole on the admin-only subset.
func RegisterRoutes(r *gin.Engine, h *Handlers, tm *auth.TokenManager, db *gorm.DB) {
	r.GET("/", Root)
	r.GET("/health", HealthCheck)

	api := r.Group("/api/v1")

	// Authentication
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	// Public browse endpoints
	api.GET("/companies", h.Companies.List)
	api.GET("/companies/:id", h.Companies.Get)
	api.GET("/jobs/recent", h.Jobs.Recent)

	authed := api.Group("")
	authed.Use(auth.RequireAuth(tm, db))
	{
		authed.GET("/auth/me", h.Auth.Me)

		// Users
		adminOnly := auth.RequireRole(models.RoleAdmin)
		authed.GET("/users", adminOnly, h.Users.List)
		authed.GET("/users/:id", h.Users.Get)
		authed.PUT("/users/:id", h.Users.Update)
		authed.DELETE("/users/:id", adminOnly, h.Users.Delete)
		authed.GET("/users/:id/stats", h.Users.Stats)
		authed.GET("/users/:id/interactions", h.Users.Interactions)
		authed.GET("/users/:id/searches", h.Users.Searches)

		// Companies
		authed.POST("/companies", h.Companies.Create)
		authed.PUT("/companies/:id", h.Companies.Update)
		authed.DELETE("/companies/:id", adminOnly, h.Companies.Delete)

		// Job offers
		authed.POST("/jobs", h.Jobs.Create)
		authed.GET("/jobs", h.Jobs.Search)
		authed.GET("/jobs/:id", h.Jobs.Get)
		authed.PUT("/jobs/:id", h.Jobs.Update)
		authed.DELETE("/jobs/:id", adminOnly, h.Jobs.Delete)
		authed.POST("/jobs/:id/interact", h.Jobs.Interact)
		authed.POST("/jobs/:id/match", h.Jobs.Match)

		// Applications
		authed.POST("/applications", h.Applications.Create)
		authed.GET("/applications", h.Applications.List)
		authed.GET("/applications/:id", h.Applications.Get)
		authed.PUT("/applications/:id", h.Applications.Update)
		authed.DELETE("/applications/:id", h.Applications.Delete)

		// Scraping configuration and run records
		authed.POST("/scraping/sources", adminOnly, h.Scraping.CreateSource)
		authed.GET("/scraping/sources", h.Scraping.ListSources)
		authed.GET("/scraping/sources/:id", h.Scraping.GetSource)
		authed.PUT("/scraping/sources/:id", adminOnly, h.Scraping.UpdateSource)
		authed.POST("/scraping/jobs", h.Scraping.CreateJob)
		authed.GET("/scraping/jobs", h.Scraping.ListJobs)
		authed.GET("/scraping/jobs/:id", h.Scraping.GetJob)
		authed.PUT("/scraping/jobs/:id/status", auth.RequireRole(models.RoleAdmin, models.RoleScraper), h.Scraping.UpdateJobStatus)

		// Stats
		authed.GET("/stats/platform", adminOnly, h.Stats.Platform)
		authed.GET("/stats/popular-searches", adminOnly, h.Stats.PopularSearches)
	}
}
