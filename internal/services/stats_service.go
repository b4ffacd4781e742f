package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"jobboard/internal/models"
)

const (
	platformStatsKey = "stats:platform"
	platformStatsTTL = 10 * time.Minute
)

// PlatformStats is the admin dashboard payload.
type PlatformStats struct {
	TotalUsers           int64            `json:"total_users"`
	ActiveUsers          int64            `json:"active_users"`
	TotalCompanies       int64            `json:"total_companies"`
	TotalJobs            int64            `json:"total_jobs"`
	ActiveJobs           int64            `json:"active_jobs"`
	TotalApplications    int64            `json:"total_applications"`
	TotalScrapingSources int64            `json:"total_scraping_sources"`
	TotalScrapingJobs    int64            `json:"total_scraping_jobs"`
	JobsByModality       map[string]int64 `json:"jobs_by_modality"`
	ScrapingByStatus     map[string]int64 `json:"scraping_by_status"`
	GeneratedAt          time.Time        `json:"generated_at"`
}

type PopularSearch struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type StatsService struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewStatsService(db *gorm.DB, rdb *redis.Client) *StatsService {
	return &StatsService{DB: db, RDB: rdb}
}

// Platform returns the platform totals, served from the Redis cache when
// fresh. A nil Redis client (tests) skips caching entirely.
func (s *StatsService) Platform(ctx context.Context) (*PlatformStats, error) {
	if s.RDB != nil {
		if raw, err := s.RDB.Get(ctx, platformStatsKey).Bytes(); err == nil {
			var cached PlatformStats
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats, err := s.computePlatform()
	if err != nil {
		return nil, err
	}

	if s.RDB != nil {
		if raw, err := json.Marshal(stats); err == nil {
			s.RDB.Set(ctx, platformStatsKey, raw, platformStatsTTL)
		}
	}
	return stats, nil
}

// RefreshPlatform recomputes the totals and overwrites the cache. Called by
// the maintenance sweep so admin reads stay warm.
func (s *StatsService) RefreshPlatform(ctx context.Context) error {
	stats, err := s.computePlatform()
	if err != nil {
		return err
	}
	if s.RDB != nil {
		raw, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return s.RDB.Set(ctx, platformStatsKey, raw, platformStatsTTL).Err()
	}
	return nil
}

func (s *StatsService) computePlatform() (*PlatformStats, error) {
	stats := &PlatformStats{
		JobsByModality:   map[string]int64{},
		ScrapingByStatus: map[string]int64{},
		GeneratedAt:      time.Now(),
	}

	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.DB.Model(&models.User{})},
		{&stats.ActiveUsers, s.DB.Model(&models.User{}).Where("is_active = ?", true)},
		{&stats.TotalCompanies, s.DB.Model(&models.Company{})},
		{&stats.TotalJobs, s.DB.Model(&models.JobOffer{})},
		{&stats.ActiveJobs, s.DB.Model(&models.JobOffer{}).Where("status = ?", models.JobActive)},
		{&stats.TotalApplications, s.DB.Model(&models.Application{})},
		{&stats.TotalScrapingSources, s.DB.Model(&models.ScrapingSource{})},
		{&stats.TotalScrapingJobs, s.DB.Model(&models.ScrapingJob{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return nil, err
		}
	}

	modality := []struct {
		Modality string
		Count    int64
	}{}
	if err := s.DB.Model(&models.JobOffer{}).
		Select("modality, count(*) as count").
		Where("modality <> ''").
		Group("modality").
		Scan(&modality).Error; err != nil {
		return nil, err
	}
	for _, m := range modality {
		stats.JobsByModality[m.Modality] = m.Count
	}

	byStatus := []struct {
		Status string
		Count  int64
	}{}
	if err := s.DB.Model(&models.ScrapingJob{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, st := range byStatus {
		stats.ScrapingByStatus[st.Status] = st.Count
	}

	return stats, nil
}

// PopularSearches groups recent search history by query text.
func (s *StatsService) PopularSearches(days, limit int) ([]PopularSearch, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	var searches []PopularSearch
	err := s.DB.Model(&models.SearchHistory{}).
		Select("query, count(*) as count").
		Where("created_at >= ?", cutoff).
		Group("query").
		Order("count desc").
		Limit(limit).
		Scan(&searches).Error
	return searches, err
}
