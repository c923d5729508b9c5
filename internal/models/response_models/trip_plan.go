package response_models

import (
	"encoding/json"

	"trekzaa/internal/models/db_models"
)

// TripPlan is the structured itinerary produced by the external generator.
// Itinerary is kept opaque; the server never interprets day contents.
type TripPlan struct {
	Destination            string          `json:"destination"`
	Summary                string          `json:"summary"`
	NumberOfDays           int             `json:"numberOfDays"`
	TravelStyle            string          `json:"travelStyle"`
	RecommendedSpecialties []string        `json:"recommendedSpecialties"`
	Itinerary              json.RawMessage `json:"itinerary"`
	Tips                   []string        `json:"tips"`
}

type MatchDetails struct {
	SpecialtyMatch  float64 `json:"specialtyMatch"`
	LocationMatch   float64 `json:"locationMatch"`
	RatingScore     float64 `json:"ratingScore"`
	PreferenceMatch float64 `json:"preferenceMatch"`
}

type MatchResult struct {
	Score   float64      `json:"score"`
	Details MatchDetails `json:"details"`
}

type ScoredGuide struct {
	db_models.Guide
	MatchScore   float64      `json:"matchScore"`
	MatchDetails MatchDetails `json:"matchDetails"`
}

type TripPlanResponse struct {
	TripPlan
	AvailableGuides []ScoredGuide `json:"availableGuides"`
}
