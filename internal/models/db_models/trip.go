package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID      `gorm:"type:uuid;index" json:"userId"`
	Destination string         `json:"destination"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate"`
	Itinerary   datatypes.JSON `gorm:"type:jsonb" json:"itinerary"`
}
