package mem

import (
	"sync"

	"trekzaa/pkg/utils"
)

// ChatHistoryStore keeps a bounded per-session conversation window.
// Once the window is full the oldest entries are evicted first.
type ChatHistoryStore interface {
	History(sessionID string) []utils.ChatMessage
	Append(sessionID string, messages ...utils.ChatMessage)
	Clear(sessionID string)
}

type window struct {
	buf   []utils.ChatMessage
	start int
	count int
}

type ChatHistory struct {
	mu       sync.RWMutex
	max      int
	sessions map[string]*window
}

func NewChatHistory(maxMessages int) *ChatHistory {
	if maxMessages <= 0 {
		maxMessages = 10
	}
	return &ChatHistory{
		max:      maxMessages,
		sessions: make(map[string]*window),
	}
}

func (s *ChatHistory) History(sessionID string) []utils.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}

	out := make([]utils.ChatMessage, 0, w.count)
	for i := 0; i < w.count; i++ {
		out = append(out, w.buf[(w.start+i)%s.max])
	}
	return out
}

func (s *ChatHistory) Append(sessionID string, messages ...utils.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.sessions[sessionID]
	if !ok {
		w = &window{buf: make([]utils.ChatMessage, s.max)}
		s.sessions[sessionID] = w
	}

	for _, m := range messages {
		if w.count < s.max {
			w.buf[(w.start+w.count)%s.max] = m
			w.count++
			continue
		}
		// full: overwrite the oldest slot
		w.buf[w.start] = m
		w.start = (w.start + 1) % s.max
	}
}

func (s *ChatHistory) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
