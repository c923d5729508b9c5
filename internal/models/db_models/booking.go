package db_models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is a closed set; anything else is rejected at the boundary.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingAccepted, BookingRejected, BookingCompleted:
		return BookingStatus(s), nil
	}
	return "", fmt.Errorf("unrecognized booking status %q", s)
}

type Booking struct {
	BaseModel
	UserID    uuid.UUID     `gorm:"type:uuid;index" json:"userId"`
	GuideID   uuid.UUID     `gorm:"type:uuid;index" json:"guideId"`
	TripID    uuid.UUID     `gorm:"type:uuid;index" json:"tripId"`
	StartDate time.Time     `json:"startDate"`
	EndDate   time.Time     `json:"endDate"`
	Status    BookingStatus `gorm:"type:text;default:'pending'" json:"status"`
	Notes     string        `json:"notes,omitempty"`

	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Guide Guide `gorm:"foreignKey:GuideID" json:"guide,omitempty"`
	Trip  Trip  `gorm:"foreignKey:TripID" json:"trip,omitempty"`
}
