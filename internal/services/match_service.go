package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"jobboard/internal/dtos"
	"jobboard/internal/models"
)

// MatchService produces a profile-to-offer compatibility report. The
// analysis is a canned response, not a model call; the shape matches what a
// future LLM backend would return.
type MatchService struct {
	DB *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db}
}

// Analyze compares the user's stored profile against an offer and returns
// the simulated report. The offer's requirements that do not appear among
// the profile's skills are listed as missing; the score is fixed at 75 like
// the canned upstream response.
func (s *MatchService) Analyze(user *models.User, offer *models.JobOffer) *dtos.MatchAnalysis {
	analysis := &dtos.MatchAnalysis{
		Summary: "The candidate's profile is promising, with solid software experience, " +
			"but lacks direct exposure to some of the key technologies required.",
		MatchScore:    75,
		MissingSkills: []string{},
	}

	skills := map[string]bool{}
	if len(user.Profile) > 0 {
		var profile struct {
			Skills []string `json:"skills"`
		}
		if json.Unmarshal(user.Profile, &profile) == nil {
			for _, skill := range profile.Skills {
				skills[skill] = true
			}
		}
	}

	if len(offer.Requirements) > 0 {
		var requirements []string
		if json.Unmarshal(offer.Requirements, &requirements) == nil {
			for _, req := range requirements {
				if !skills[req] {
					analysis.MissingSkills = append(analysis.MissingSkills, req)
				}
			}
		}
	}

	return analysis
}
