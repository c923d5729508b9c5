package utils

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidCredentials   = errors.New("incorrect username or password")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrGuideNotFound        = errors.New("guide not found")
	ErrTripNotFound         = errors.New("trip not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrPostNotFound         = errors.New("post not found")
	ErrPackingItemNotFound  = errors.New("packing item not found")
	ErrNotAGuide            = errors.New("not a guide")
	ErrAdminRequired        = errors.New("admin access required")
	ErrBookingForbidden     = errors.New("not authorized to update this booking")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
	ErrDatabaseError        = errors.New("database error")
	ErrUpstreamAI           = errors.New("ai service error")
	ErrUpstreamTranslation  = errors.New("translation service error")
)
