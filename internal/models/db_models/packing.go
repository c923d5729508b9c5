package db_models

import "github.com/google/uuid"

type PackingList struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index" json:"userId"`
	TripID uuid.UUID `gorm:"type:uuid;index" json:"tripId"`
	Name   string    `json:"name"`

	Items []PackingItem `gorm:"foreignKey:ListID" json:"items"`
}

type PackingItem struct {
	BaseModel
	ListID      uuid.UUID `gorm:"type:uuid;index" json:"listId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    string    `json:"quantity"`
	IsPacked    bool      `gorm:"default:false" json:"isPacked"`
	IsEssential bool      `gorm:"default:false" json:"isEssential"`
	Notes       string    `json:"notes,omitempty"`
	AISuggested bool      `gorm:"default:false" json:"aiSuggested"`
}
