// Package tasks implements the task store: one JSON array file per user,
// named deterministically from the username.
package tasks
