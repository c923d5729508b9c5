package request_models

type RegisterGuideRequest struct {
	Specialties []string `json:"specialties" binding:"required,min=1"`
	Locations   []string `json:"locations" binding:"required,min=1"`
	Bio         string   `json:"bio"`
}
