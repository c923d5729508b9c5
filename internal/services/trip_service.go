package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/internal/models/response_models"
	"trekzaa/internal/repositories"
	"trekzaa/pkg/utils"
)

// fallbackSpecialties stand in when the generator returns no usable
// recommended-specialty list.
var fallbackSpecialties = []string{"Culture", "Food", "Adventure"}

type TripServiceInterface interface {
	PlanTrip(ctx context.Context, request request_models.PlanTripRequest, userID *uuid.UUID) (*response_models.TripPlanResponse, error)
	SaveTrip(ctx context.Context, userID uuid.UUID, request request_models.SaveTripRequest) (*db_models.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID) ([]*db_models.Trip, error)
}

type TripService struct {
	prefRepo   repositories.PreferenceRepository
	guideRepo  repositories.GuideRepository
	tripRepo   repositories.TripRepository
	completion utils.CompletionClientInterface
}

func NewTripService(
	prefRepo repositories.PreferenceRepository,
	guideRepo repositories.GuideRepository,
	tripRepo repositories.TripRepository,
	completion utils.CompletionClientInterface,
) TripServiceInterface {
	return &TripService{
		prefRepo:   prefRepo,
		guideRepo:  guideRepo,
		tripRepo:   tripRepo,
		completion: completion,
	}
}

// PlanTrip runs the full planning flow: stored preferences (optional),
// itinerary generation, destination-filtered guide lookup, per-guide
// scoring, stable sort by score.
func (s *TripService) PlanTrip(ctx context.Context, request request_models.PlanTripRequest, userID *uuid.UUID) (*response_models.TripPlanResponse, error) {
	var prefs *db_models.TravelPreference
	if userID != nil {
		stored, err := s.prefRepo.FindByUserID(ctx, *userID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		prefs = stored
	}

	plan, err := s.generateTripPlan(ctx, request, prefs)
	if err != nil {
		log.Printf("Trip plan generation failed for %q: %v", request.Destination, err)
		return nil, utils.ErrUpstreamAI
	}

	candidates, err := s.guideRepo.ListByDestinationPattern(ctx, request.Destination)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	scored := make([]response_models.ScoredGuide, 0, len(candidates))
	for _, guide := range candidates {
		result, err := CalculateGuideMatchScore(guide, plan, prefs)
		if err != nil {
			// One malformed guide must never abort the request.
			log.Printf("Skipping guide %s: %v", guide.ID, err)
			continue
		}
		scored = append(scored, response_models.ScoredGuide{
			Guide:        *guide,
			MatchScore:   result.Score,
			MatchDetails: result.Details,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	return &response_models.TripPlanResponse{
		TripPlan:        *plan,
		AvailableGuides: scored,
	}, nil
}

func (s *TripService) generateTripPlan(ctx context.Context, request request_models.PlanTripRequest, prefs *db_models.TravelPreference) (*response_models.TripPlan, error) {
	messages := []utils.ChatMessage{
		{
			Role:    utils.RoleSystem,
			Content: "You are an expert travel planner with deep knowledge of destinations worldwide. Focus on creating highly personalized recommendations that match user preferences.",
		},
		{
			Role:    utils.RoleUser,
			Content: buildTripPrompt(request, prefs),
		},
	}

	raw, err := s.completion.CompleteJSON(ctx, messages)
	if err != nil {
		return nil, err
	}

	plan, err := parseTripPlan(raw)
	if err != nil {
		return nil, err
	}

	plan.Destination = request.Destination
	if len(plan.RecommendedSpecialties) == 0 {
		plan.RecommendedSpecialties = append([]string(nil), fallbackSpecialties...)
	}
	return plan, nil
}

func buildTripPrompt(request request_models.PlanTripRequest, prefs *db_models.TravelPreference) string {
	preferencesContext := "No specific user preferences available"
	if prefs != nil {
		preferencesContext = fmt.Sprintf(`Consider these user preferences:
Travel Style: %s
Preferred Activities: %s
Accommodation: %s
Transportation: %s
Budget: %s
Food Preferences: %s`,
			orNotSpecified(prefs.TravelStyle),
			orNotSpecified(strings.Join(prefs.Activities, ", ")),
			orNotSpecified(prefs.Accommodation),
			orNotSpecified(prefs.Transportation),
			orNotSpecified(prefs.Budget),
			orNotSpecified(prefs.FoodPreferences))
	}

	freeText := request.Preferences
	if freeText == "" {
		freeText = "No specific preferences"
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "As an expert travel planner, create a detailed personalized trip plan for %s from %s to %s. %s\nAdditional preferences: %s\n\n",
		request.Destination, request.StartDate, request.EndDate, preferencesContext, freeText)
	fmt.Fprintf(&prompt, `Provide a JSON response with:
{
  "destination": "%s",
  "summary": "A compelling 2-3 sentence overview of the trip",
  "numberOfDays": 3,
  "travelStyle": "Adventure/Luxury/Cultural/etc based on preferences",
  "recommendedSpecialties": ["List 3-4 relevant guide specialties based on user preferences"],
  "itinerary": {
    "day1": {
      "activities": ["3-4 specific activities with timing"],
      "accommodation": {
        "luxury": "Specific luxury hotel recommendation",
        "budget": "Specific budget accommodation option"
      }
    }
  },
  "tips": ["4-5 specific local tips and cultural insights"]
}

Important guidelines:
1. Activities should match the user's preferred style and interests
2. Include a mix of popular and off-the-beaten-path recommendations
3. Consider local events happening during the travel dates
4. Match guide specialties to both destination highlights and user preferences
5. numberOfDays must be calculated from the start and end dates`, request.Destination)

	return prompt.String()
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// parseTripPlan tolerates the model returning numberOfDays as a string.
func parseTripPlan(raw string) (*response_models.TripPlan, error) {
	raw = utils.CleanJSONReply(raw)

	var aux struct {
		Destination            string          `json:"destination"`
		Summary                string          `json:"summary"`
		NumberOfDays           json.RawMessage `json:"numberOfDays"`
		TravelStyle            string          `json:"travelStyle"`
		RecommendedSpecialties json.RawMessage `json:"recommendedSpecialties"`
		Itinerary              json.RawMessage `json:"itinerary"`
		Tips                   []string        `json:"tips"`
	}
	if err := json.Unmarshal([]byte(raw), &aux); err != nil {
		return nil, fmt.Errorf("invalid trip plan JSON: %w", err)
	}

	return &response_models.TripPlan{
		Destination:            aux.Destination,
		Summary:                aux.Summary,
		NumberOfDays:           parseDayCount(aux.NumberOfDays),
		TravelStyle:            aux.TravelStyle,
		RecommendedSpecialties: parseSpecialtyList(aux.RecommendedSpecialties),
		Itinerary:              aux.Itinerary,
		Tips:                   aux.Tips,
	}, nil
}

// parseSpecialtyList returns nil when the field is missing or not a list of
// strings; the caller substitutes the fallback set instead of failing.
func parseSpecialtyList(raw json.RawMessage) []string {
	var specialties []string
	if err := json.Unmarshal(raw, &specialties); err != nil {
		return nil
	}
	return specialties
}

// parseDayCount accepts both 3 and "3"; anything else counts as zero.
func parseDayCount(raw json.RawMessage) int {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return parsed
		}
	}
	return 0
}

func (s *TripService) SaveTrip(ctx context.Context, userID uuid.UUID, request request_models.SaveTripRequest) (*db_models.Trip, error) {
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		UserID:      userID,
		Destination: request.Destination,
		StartDate:   start,
		EndDate:     end,
		Itinerary:   datatypes.JSON(request.Itinerary),
	}
	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trip, nil
}

func (s *TripService) ListTrips(ctx context.Context, userID uuid.UUID) ([]*db_models.Trip, error) {
	trips, err := s.tripRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trips, nil
}
