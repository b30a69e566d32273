// Package timex holds the timestamp format shared by the credential and task
// files. Timestamps are stored as formatted strings, not time.Time values,
// because the on-disk format predates this implementation.
package timex

import "time"

// Layout is the wire format for created_at fields.
const Layout = "2006-01-02 15:04:05"

// Stamp formats t in the wire layout.
func Stamp(t time.Time) string {
	return t.Format(Layout)
}
