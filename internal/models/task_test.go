package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_WireStrings(t *testing.T) {
	b, err := json.Marshal(Task{ID: 1, Name: "buy milk", Status: StatusPending, CreatedAt: "2024-01-02 10:00:00"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"buy milk","status":"Not Done","created_at":"2024-01-02 10:00:00"}`, string(b))

	var task Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"name":"call bob","status":"Done","created_at":"2024-01-02 11:00:00"}`), &task))
	assert.Equal(t, StatusDone, task.Status)
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "Done", StatusDone.Label())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, Status("done").Valid())
	assert.False(t, Status("").Valid())
}
