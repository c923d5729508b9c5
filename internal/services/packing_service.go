package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/internal/repositories"
	"trekzaa/pkg/utils"
)

type PackingServiceInterface interface {
	GenerateList(ctx context.Context, userID uuid.UUID, request request_models.GeneratePackingListRequest) (*db_models.PackingList, error)
	ListsForTrip(ctx context.Context, userID, tripID uuid.UUID) ([]*db_models.PackingList, error)
	SetItemPacked(ctx context.Context, itemID uuid.UUID, packed bool) (*db_models.PackingItem, error)
}

type PackingService struct {
	packingRepo repositories.PackingRepository
	prefRepo    repositories.PreferenceRepository
	completion  utils.CompletionClientInterface
}

func NewPackingService(
	packingRepo repositories.PackingRepository,
	prefRepo repositories.PreferenceRepository,
	completion utils.CompletionClientInterface,
) PackingServiceInterface {
	return &PackingService{
		packingRepo: packingRepo,
		prefRepo:    prefRepo,
		completion:  completion,
	}
}

// GenerateList asks the completion service for a packing list and persists
// it. A failed or unparseable completion fails the whole operation; nothing
// is persisted without items.
func (s *PackingService) GenerateList(ctx context.Context, userID uuid.UUID, request request_models.GeneratePackingListRequest) (*db_models.PackingList, error) {
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	tripID, err := uuid.Parse(request.TripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	prefs, err := s.prefRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	duration := utils.TripDurationDays(start, end)
	month := start.Month().String()

	raw, err := s.completion.CompleteJSON(ctx, []utils.ChatMessage{{
		Role:    utils.RoleSystem,
		Content: buildPackingPrompt(request.Destination, duration, month, prefs),
	}})
	if err != nil {
		log.Printf("Packing list generation failed for %q: %v", request.Destination, err)
		return nil, utils.ErrUpstreamAI
	}

	items, err := parsePackingItems(raw)
	if err != nil {
		log.Printf("Unparseable packing list reply: %v", err)
		return nil, utils.ErrUpstreamAI
	}

	list := &db_models.PackingList{
		UserID: userID,
		TripID: tripID,
		Name:   "Packing List for " + request.Destination,
	}
	created, err := s.packingRepo.CreateListWithItems(ctx, list, items)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return created, nil
}

func buildPackingPrompt(destination string, duration int, month string, prefs *db_models.TravelPreference) string {
	var (
		style, activities, transportation, budget, food = "Not specified", "Not specified", "Not specified", "Not specified", "Not specified"
	)
	if prefs != nil {
		style = orNotSpecified(prefs.TravelStyle)
		activities = orNotSpecified(strings.Join(prefs.Activities, ", "))
		transportation = orNotSpecified(prefs.Transportation)
		budget = orNotSpecified(prefs.Budget)
		food = orNotSpecified(prefs.FoodPreferences)
	}

	return fmt.Sprintf(`You are an expert AI travel packing assistant. Generate a detailed, personalized packing list for a %d-day trip to %s in %s.

Consider these traveler preferences:
- Travel Style: %s
- Activities: %s
- Transportation: %s
- Budget Level: %s
- Food Preferences: %s

Consider the following factors:
1. Weather and seasonal conditions in %s during %s
2. Common activities and cultural norms at the destination
3. Travel style and planned activities
4. Transportation mode and related restrictions
5. Budget considerations for equipment recommendations

Provide a JSON response with this format:
{
  "items": [
    {
      "name": "Item name",
      "category": "Category (Clothing, Electronics, Documents, Toiletries, Gear, etc.)",
      "quantity": "Suggested quantity with unit (e.g., '2 pairs', '1 set', 'As needed')",
      "isEssential": true,
      "notes": "Packing tips, specific recommendations, or usage context"
    }
  ]
}`, duration, destination, month, style, activities, transportation, budget, food, destination, month)
}

func parsePackingItems(raw string) ([]db_models.PackingItem, error) {
	raw = utils.CleanJSONReply(raw)

	var envelope struct {
		Items []struct {
			Name        string `json:"name"`
			Category    string `json:"category"`
			Quantity    string `json:"quantity"`
			IsEssential bool   `json:"isEssential"`
			Notes       string `json:"notes"`
		} `json:"items"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("invalid packing list JSON: %w", err)
	}
	if len(envelope.Items) == 0 {
		return nil, fmt.Errorf("packing list reply contained no items")
	}

	items := make([]db_models.PackingItem, 0, len(envelope.Items))
	for _, it := range envelope.Items {
		items = append(items, db_models.PackingItem{
			Name:        it.Name,
			Category:    it.Category,
			Quantity:    it.Quantity,
			IsEssential: it.IsEssential,
			Notes:       it.Notes,
			AISuggested: true,
		})
	}
	return items, nil
}

func (s *PackingService) ListsForTrip(ctx context.Context, userID, tripID uuid.UUID) ([]*db_models.PackingList, error) {
	lists, err := s.packingRepo.ListByUserAndTrip(ctx, userID, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return lists, nil
}

func (s *PackingService) SetItemPacked(ctx context.Context, itemID uuid.UUID, packed bool) (*db_models.PackingItem, error) {
	item, err := s.packingRepo.SetItemPacked(ctx, itemID, packed)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if item == nil {
		return nil, utils.ErrPackingItemNotFound
	}
	return item, nil
}
