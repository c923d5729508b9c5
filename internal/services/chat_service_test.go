package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "trekzaa/pkg/memcache"
	"trekzaa/pkg/utils"
)

func TestHandleMessage_ForwardsWindowWithSystemPrompt(t *testing.T) {
	completion := &fakeCompletion{reply: `{"message":"Bonjour!"}`}
	svc := NewChatService(mem.NewChatHistory(10), completion)

	reply, err := svc.HandleMessage(context.Background(), "session-1", "Hi")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour!", reply.Message)

	require.Len(t, completion.messages, 2)
	assert.Equal(t, utils.RoleSystem, completion.messages[0].Role)
	assert.Equal(t, utils.RoleUser, completion.messages[1].Role)
	assert.Equal(t, "Hi", completion.messages[1].Content)
}

func TestHandleMessage_WindowNeverExceedsTenEntries(t *testing.T) {
	completion := &fakeCompletion{reply: `{"message":"ok"}`}
	history := mem.NewChatHistory(10)
	svc := NewChatService(history, completion)

	for i := 0; i < 8; i++ {
		_, err := svc.HandleMessage(context.Background(), "s", fmt.Sprintf("turn %d", i))
		require.NoError(t, err)
	}

	window := history.History("s")
	require.Len(t, window, 10)
	// oldest pairs evicted first: turns 0-2 are gone, turn 3 leads
	assert.Equal(t, "turn 3", window[0].Content)
	assert.Equal(t, utils.RoleUser, window[0].Role)
}

func TestHandleMessage_TripDetailsExtractedWhenCreateTripSet(t *testing.T) {
	completion := &fakeCompletion{reply: `{
		"message": "Let's go!",
		"tripDetails": {"destination": "Kyoto", "startDate": "2024-04-01", "endDate": "2024-04-05", "createTrip": true}
	}`}
	svc := NewChatService(mem.NewChatHistory(10), completion)

	reply, err := svc.HandleMessage(context.Background(), "s", "Plan Kyoto in April")
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", reply.Destination)
	assert.Equal(t, "2024-04-01", reply.StartDate)
	assert.Equal(t, "2024-04-05", reply.EndDate)
}

func TestHandleMessage_TripDetailsIgnoredWithoutCreateTrip(t *testing.T) {
	completion := &fakeCompletion{reply: `{
		"message": "Maybe later",
		"tripDetails": {"destination": "Kyoto", "createTrip": false}
	}`}
	svc := NewChatService(mem.NewChatHistory(10), completion)

	reply, err := svc.HandleMessage(context.Background(), "s", "hm")
	require.NoError(t, err)
	assert.Empty(t, reply.Destination)
}

func TestHandleMessage_MalformedReplyDegradesToApology(t *testing.T) {
	cases := map[string]struct {
		reply string
		want  string
	}{
		"empty":          {"", "I'm sorry, I couldn't generate a response. Please try again."},
		"not json":       {"sure thing!", "I'm sorry, I had trouble processing that. Could you try again?"},
		"message absent": {`{"foo": 1}`, "I'm sorry, I couldn't understand that. Could you rephrase your question?"},
		"message number": {`{"message": 42}`, "I'm sorry, I couldn't understand that. Could you rephrase your question?"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewChatService(mem.NewChatHistory(10), &fakeCompletion{reply: tc.reply})
			reply, err := svc.HandleMessage(context.Background(), "s", "hi")
			require.NoError(t, err)
			assert.Equal(t, tc.want, reply.Message)
		})
	}
}

func TestHandleMessage_UpstreamFailureSurfaces(t *testing.T) {
	svc := NewChatService(mem.NewChatHistory(10), &fakeCompletion{err: errors.New("down")})

	_, err := svc.HandleMessage(context.Background(), "s", "hi")
	assert.ErrorIs(t, err, utils.ErrUpstreamAI)
}

func TestHandleMessage_SessionsAreIsolated(t *testing.T) {
	completion := &fakeCompletion{reply: `{"message":"ok"}`}
	history := mem.NewChatHistory(10)
	svc := NewChatService(history, completion)

	_, err := svc.HandleMessage(context.Background(), "alice", "hello from alice")
	require.NoError(t, err)

	_, err = svc.HandleMessage(context.Background(), "bob", "hello from bob")
	require.NoError(t, err)

	// bob's request must not carry alice's turns
	require.Len(t, completion.messages, 2)
	assert.Equal(t, "hello from bob", completion.messages[1].Content)
}
