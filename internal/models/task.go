package models

// Status is a task's completion state. The constant values are the wire
// strings used in the per-user task files.
type Status string

const (
	StatusPending Status = "Not Done"
	StatusDone    Status = "Done"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusDone
}

// Label returns the display name for s. The pending wire string "Not Done"
// is shown to users as "Pending".
func (s Status) Label() string {
	if s == StatusDone {
		return "Done"
	}
	return "Pending"
}

// Task is one unit of to-do work. Within one user's sequence, IDs are always
// the dense range 1..N in insertion order; deleting tasks renumbers the
// survivors, so IDs are not stable across deletions.
type Task struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Status    Status `json:"status"`
	CreatedAt string `json:"created_at"`
}
