package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Guide struct {
	BaseModel
	UserID      uuid.UUID      `gorm:"type:uuid;index" json:"userId"`
	Specialties pq.StringArray `gorm:"type:text[]" json:"specialties"`
	Locations   pq.StringArray `gorm:"type:text[]" json:"locations"`
	// Rating is a decimal string on a 0-5 scale, e.g. "4.5".
	Rating   string `json:"rating"`
	Verified bool   `gorm:"default:false" json:"verified"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}
