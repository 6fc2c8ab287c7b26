package tempdatahandlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporaryData(t *testing.T) {
	s := NewStore()
	s.SetTemporaryData(1, "session", "abc")
	s.SetTemporaryData(1, "game", "9")

	data := s.GetTemporaryData(1)
	assert.Equal(t, map[string]string{"session": "abc", "game": "9"}, data)

	data["session"] = "changed"
	v, ok := s.Get(1, "session")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	s.DeleteTemporaryData(1)
	assert.Empty(t, s.GetTemporaryData(1))
	_, ok = s.Get(1, "session")
	assert.False(t, ok)
}

func TestState(t *testing.T) {
	s := NewStore()
	assert.Equal(t, "", s.State(5))
	s.SetState(5, "live_game_id")
	assert.Equal(t, "live_game_id", s.State(5))
	s.ClearState(5)
	assert.Equal(t, "", s.State(5))
}
