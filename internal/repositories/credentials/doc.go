// Package credentials implements the credential store: a single JSON file
// mapping usernames to password hashes and creation timestamps.
package credentials
