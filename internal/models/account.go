// Package models defines the account and task types shared by storage and
// services.
package models

// Account holds the stored credential record for one user. The username is
// the map key in the credential file, not a field. The wire key "password"
// carries the hash, matching the existing file format.
type Account struct {
	PasswordHash string `json:"password"`
	CreatedAt    string `json:"created_at"`
}
