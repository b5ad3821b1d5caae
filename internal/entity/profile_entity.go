package entity

import "time"

// Profile mirrors the identity provider's view of a user. Id is the provider's
// opaque user id.
type Profile struct {
	Id        string
	Email     string
	Username  string
	FullName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
