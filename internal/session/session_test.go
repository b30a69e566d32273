package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New("alice")

	assert.Equal(t, "alice", s.Username)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.False(t, s.StartedAt.IsZero())

	other := New("alice")
	assert.NotEqual(t, s.ID, other.ID)
}
