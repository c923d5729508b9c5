package request_models

type UpsertPreferencesRequest struct {
	TravelStyle     string   `json:"travelStyle"`
	Accommodation   string   `json:"accommodation"`
	Activities      []string `json:"activities"`
	Transportation  string   `json:"transportation"`
	Budget          string   `json:"budget"`
	FoodPreferences string   `json:"foodPreferences"`
}
