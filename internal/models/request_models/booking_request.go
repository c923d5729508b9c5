package request_models

type CreateBookingRequest struct {
	GuideID   string `json:"guideId" binding:"required,uuid4"`
	TripID    string `json:"tripId" binding:"required,uuid4"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Notes     string `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
