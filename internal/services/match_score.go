package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/response_models"
)

const (
	specialtyWeight  = 0.3
	locationWeight   = 0.3
	ratingWeight     = 0.2
	preferenceWeight = 0.2
)

var errIncompleteGuideData = errors.New("missing required data for score calculation")

// CalculateGuideMatchScore computes how well a guide fits a trip plan and,
// optionally, the requesting user's stored preferences. Pure: no side
// effects, callers decide what to do with a per-guide error.
func CalculateGuideMatchScore(
	guide *db_models.Guide,
	plan *response_models.TripPlan,
	prefs *db_models.TravelPreference,
) (*response_models.MatchResult, error) {
	if guide == nil || len(guide.Specialties) == 0 || len(guide.Locations) == 0 ||
		plan == nil || len(plan.RecommendedSpecialties) == 0 {
		return nil, errIncompleteGuideData
	}

	recommended := make(map[string]bool, len(plan.RecommendedSpecialties))
	for _, s := range plan.RecommendedSpecialties {
		recommended[strings.ToLower(s)] = true
	}
	specialtyMatches := 0
	for _, s := range guide.Specialties {
		if recommended[strings.ToLower(s)] {
			specialtyMatches++
		}
	}
	specialtyMatch := math.Min(1, float64(specialtyMatches)/float64(len(plan.RecommendedSpecialties)))

	// Substring in either direction: "Paris" matches "Paris, France".
	locationMatch := 0.0
	tripLoc := strings.ToLower(plan.Destination)
	for _, location := range guide.Locations {
		guideLoc := strings.ToLower(location)
		if strings.Contains(guideLoc, tripLoc) || strings.Contains(tripLoc, guideLoc) {
			locationMatch = 1.0
			break
		}
	}

	ratingScore := 0.0
	if guide.Rating != "" {
		if rating, err := strconv.ParseFloat(guide.Rating, 64); err == nil {
			ratingScore = rating / 5
		}
	}

	preferenceMatch := 0.0
	if prefs != nil {
		matchCount := 0
		totalPreferences := 0

		if prefs.TravelStyle != "" {
			totalPreferences++
			style := strings.ToLower(prefs.TravelStyle)
			for _, s := range guide.Specialties {
				if strings.Contains(strings.ToLower(s), style) {
					matchCount++
					break
				}
			}
		}

		for _, activity := range prefs.Activities {
			totalPreferences++
			act := strings.ToLower(activity)
			for _, s := range guide.Specialties {
				spec := strings.ToLower(s)
				if strings.Contains(act, spec) || strings.Contains(spec, act) {
					matchCount++
					break
				}
			}
		}

		if totalPreferences > 0 {
			preferenceMatch = float64(matchCount) / float64(totalPreferences)
		}
	}

	score := specialtyMatch*specialtyWeight +
		locationMatch*locationWeight +
		ratingScore*ratingWeight +
		preferenceMatch*preferenceWeight

	return &response_models.MatchResult{
		Score: math.Round(score*100) / 100,
		Details: response_models.MatchDetails{
			SpecialtyMatch:  specialtyMatch,
			LocationMatch:   locationMatch,
			RatingScore:     ratingScore,
			PreferenceMatch: preferenceMatch,
		},
	}, nil
}
