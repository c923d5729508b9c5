package mem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekzaa/pkg/utils"
)

func msg(i int) utils.ChatMessage {
	return utils.ChatMessage{Role: utils.RoleUser, Content: fmt.Sprintf("m%d", i)}
}

func TestChatHistory_AppendAndReadBack(t *testing.T) {
	h := NewChatHistory(10)
	h.Append("s", msg(0), msg(1))

	window := h.History("s")
	require.Len(t, window, 2)
	assert.Equal(t, "m0", window[0].Content)
	assert.Equal(t, "m1", window[1].Content)
}

func TestChatHistory_EvictsOldestFirst(t *testing.T) {
	h := NewChatHistory(10)
	for i := 0; i < 17; i++ {
		h.Append("s", msg(i))
	}

	window := h.History("s")
	require.Len(t, window, 10)
	assert.Equal(t, "m7", window[0].Content)
	assert.Equal(t, "m16", window[9].Content)
}

func TestChatHistory_NeverExceedsMax(t *testing.T) {
	h := NewChatHistory(10)
	for i := 0; i < 100; i++ {
		h.Append("s", msg(i))
		assert.LessOrEqual(t, len(h.History("s")), 10)
	}
}

func TestChatHistory_ZeroMaxFallsBackToDefault(t *testing.T) {
	h := NewChatHistory(0)
	for i := 0; i < 12; i++ {
		h.Append("s", msg(i))
	}
	assert.Len(t, h.History("s"), 10)
}

func TestChatHistory_SessionsIndependent(t *testing.T) {
	h := NewChatHistory(10)
	h.Append("a", msg(1))
	h.Append("b", msg(2))

	require.Len(t, h.History("a"), 1)
	require.Len(t, h.History("b"), 1)
	assert.Equal(t, "m1", h.History("a")[0].Content)
}

func TestChatHistory_Clear(t *testing.T) {
	h := NewChatHistory(10)
	h.Append("s", msg(1))
	h.Clear("s")
	assert.Empty(t, h.History("s"))
}

func TestChatHistory_UnknownSessionEmpty(t *testing.T) {
	h := NewChatHistory(10)
	assert.Empty(t, h.History("nope"))
}
