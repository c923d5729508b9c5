package request_models

import "encoding/json"

type PlanTripRequest struct {
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	// Preferences is free text from the planning form, forwarded verbatim
	// into the itinerary prompt.
	Preferences string `json:"preferences"`
}

type SaveTripRequest struct {
	Destination string          `json:"destination" binding:"required"`
	StartDate   string          `json:"startDate" binding:"required"`
	EndDate     string          `json:"endDate" binding:"required"`
	Itinerary   json.RawMessage `json:"itinerary"`
}
