package services

import (
	"context"
	"encoding/json"
	"log"

	"trekzaa/internal/models/response_models"
	mem "trekzaa/pkg/memcache"
	"trekzaa/pkg/utils"
)

const chatSystemPrompt = `You are a friendly AI travel assistant. Help users plan their trips by providing helpful information and suggestions.

Always respond in this JSON format:
{
  "message": "Your response message here"
}

When a user asks about specific travel details or is ready to create a trip, include trip details like this:
{
  "message": "Your response message here",
  "tripDetails": {
    "destination": "City name",
    "startDate": "YYYY-MM-DD",
    "endDate": "YYYY-MM-DD",
    "createTrip": true
  }
}`

const (
	chatFallbackEmpty      = "I'm sorry, I couldn't generate a response. Please try again."
	chatFallbackBadMessage = "I'm sorry, I couldn't understand that. Could you rephrase your question?"
	chatFallbackBadJSON    = "I'm sorry, I had trouble processing that. Could you try again?"
)

type ChatServiceInterface interface {
	HandleMessage(ctx context.Context, sessionID string, message string) (*response_models.ChatReply, error)
}

type ChatService struct {
	history    mem.ChatHistoryStore
	completion utils.CompletionClientInterface
}

func NewChatService(history mem.ChatHistoryStore, completion utils.CompletionClientInterface) ChatServiceInterface {
	return &ChatService{
		history:    history,
		completion: completion,
	}
}

// HandleMessage appends the user turn to the session window, forwards the
// window to the completion service and parses the reply envelope. Malformed
// upstream replies degrade to a fixed apology; the conversation never
// surfaces a parse error.
func (s *ChatService) HandleMessage(ctx context.Context, sessionID string, message string) (*response_models.ChatReply, error) {
	messages := make([]utils.ChatMessage, 0, 12)
	messages = append(messages, utils.ChatMessage{Role: utils.RoleSystem, Content: chatSystemPrompt})
	messages = append(messages, s.history.History(sessionID)...)
	messages = append(messages, utils.ChatMessage{Role: utils.RoleUser, Content: message})

	raw, err := s.completion.CompleteJSON(ctx, messages)
	if err != nil {
		log.Printf("Chat completion failed: %v", err)
		return nil, utils.ErrUpstreamAI
	}

	reply := parseChatReply(raw)

	s.history.Append(sessionID,
		utils.ChatMessage{Role: utils.RoleUser, Content: message},
		utils.ChatMessage{Role: utils.RoleAssistant, Content: reply.Message},
	)

	return reply, nil
}

func parseChatReply(raw string) *response_models.ChatReply {
	raw = utils.CleanJSONReply(raw)
	if raw == "" {
		return &response_models.ChatReply{Message: chatFallbackEmpty}
	}

	var envelope struct {
		Message     json.RawMessage `json:"message"`
		TripDetails *struct {
			Destination string `json:"destination"`
			StartDate   string `json:"startDate"`
			EndDate     string `json:"endDate"`
			CreateTrip  bool   `json:"createTrip"`
		} `json:"tripDetails"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		log.Printf("Unparseable chat reply: %v", err)
		return &response_models.ChatReply{Message: chatFallbackBadJSON}
	}

	var text string
	if err := json.Unmarshal(envelope.Message, &text); err != nil || text == "" {
		log.Printf("Chat reply missing string message field")
		return &response_models.ChatReply{Message: chatFallbackBadMessage}
	}

	reply := &response_models.ChatReply{Message: text}
	if envelope.TripDetails != nil && envelope.TripDetails.CreateTrip {
		reply.Destination = envelope.TripDetails.Destination
		reply.StartDate = envelope.TripDetails.StartDate
		reply.EndDate = envelope.TripDetails.EndDate
	}
	return reply
}
