package response_models

// ChatReply carries the assistant message plus trip fields when the
// assistant signalled trip creation.
type ChatReply struct {
	Message     string `json:"message"`
	Destination string `json:"destination,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}
