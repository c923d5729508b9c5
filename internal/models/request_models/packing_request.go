package request_models

type GeneratePackingListRequest struct {
	Destination string `json:"destination" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	TripID      string `json:"tripId" binding:"required,uuid4"`
}

type UpdatePackingItemRequest struct {
	IsPacked *bool `json:"isPacked" binding:"required"`
}
