package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekzaa/internal/models/db_models"
	"trekzaa/internal/models/request_models"
	"trekzaa/pkg/utils"
)

const packingReply = `{
	"items": [
		{"name": "Rain jacket", "category": "Clothing", "quantity": "1", "isEssential": true, "notes": "June showers"},
		{"name": "Power adapter", "category": "Electronics", "quantity": "1", "isEssential": true, "notes": ""}
	]
}`

func packingRequest() request_models.GeneratePackingListRequest {
	return request_models.GeneratePackingListRequest{
		Destination: "Oslo",
		StartDate:   "2024-06-01",
		EndDate:     "2024-06-06",
		TripID:      uuid.New().String(),
	}
}

func TestGenerateList_ComputesDurationAndTagsItems(t *testing.T) {
	completion := &fakeCompletion{reply: packingReply}
	repo := &fakePackingRepo{}
	svc := NewPackingService(repo, &fakePreferenceRepo{}, completion)

	list, err := svc.GenerateList(context.Background(), uuid.New(), packingRequest())
	require.NoError(t, err)

	// 2024-06-01 to 2024-06-06 is a 5-day trip
	assert.Contains(t, completion.messages[0].Content, "5-day trip to Oslo in June")

	require.Len(t, list.Items, 2)
	for _, item := range list.Items {
		assert.True(t, item.AISuggested)
	}
	assert.Equal(t, "Packing List for Oslo", list.Name)
}

func TestGenerateList_NothingPersistedOnUpstreamFailure(t *testing.T) {
	repo := &fakePackingRepo{}
	svc := NewPackingService(repo, &fakePreferenceRepo{}, &fakeCompletion{err: errors.New("down")})

	_, err := svc.GenerateList(context.Background(), uuid.New(), packingRequest())
	assert.ErrorIs(t, err, utils.ErrUpstreamAI)
	assert.Empty(t, repo.created)
}

func TestGenerateList_NothingPersistedOnEmptyItemList(t *testing.T) {
	repo := &fakePackingRepo{}
	svc := NewPackingService(repo, &fakePreferenceRepo{}, &fakeCompletion{reply: `{"items": []}`})

	_, err := svc.GenerateList(context.Background(), uuid.New(), packingRequest())
	assert.ErrorIs(t, err, utils.ErrUpstreamAI)
	assert.Empty(t, repo.created)
}

func TestGenerateList_RejectsUnparseableDates(t *testing.T) {
	svc := NewPackingService(&fakePackingRepo{}, &fakePreferenceRepo{}, &fakeCompletion{})

	req := packingRequest()
	req.StartDate = "soon"
	_, err := svc.GenerateList(context.Background(), uuid.New(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateList_SameDayTripCountsOneDay(t *testing.T) {
	completion := &fakeCompletion{reply: packingReply}
	svc := NewPackingService(&fakePackingRepo{}, &fakePreferenceRepo{}, completion)

	req := packingRequest()
	req.EndDate = req.StartDate
	_, err := svc.GenerateList(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.Contains(t, completion.messages[0].Content, "1-day trip")
}

func TestSetItemPacked_UnknownItem(t *testing.T) {
	svc := NewPackingService(&fakePackingRepo{items: map[uuid.UUID]*db_models.PackingItem{}}, &fakePreferenceRepo{}, &fakeCompletion{})

	_, err := svc.SetItemPacked(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, utils.ErrPackingItemNotFound)
}
