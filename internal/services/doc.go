// Package services contains the application core: the Authenticator over the
// credential store and the per-session TaskService over a user's task store.
// The presentation layer calls these operations one at a time; every
// operation completes or fails synchronously.
package services
