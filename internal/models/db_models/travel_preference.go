package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type TravelPreference struct {
	BaseModel
	UserID          uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"userId"`
	TravelStyle     string         `json:"travelStyle"`
	Accommodation   string         `json:"accommodation"`
	Activities      pq.StringArray `gorm:"type:text[]" json:"activities"`
	Transportation  string         `json:"transportation"`
	Budget          string         `json:"budget"`
	FoodPreferences string         `json:"foodPreferences"`
}
