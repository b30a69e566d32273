// Package cli implements the interactive Taskdesk terminal client: a
// read–eval–print loop over the Authenticator and, once a session exists,
// the TaskService. It owns no task or account state beyond the active
// session and the caller-held list filter.
package cli
