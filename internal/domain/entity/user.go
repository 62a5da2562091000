package entity

import "github.com/google/uuid"

// User is a login account. Fishermen are bound to one boat.
type User struct {
	ID           uuid.UUID // Stable identifier, used as the token subject.
	Email        string    // Login identifier.
	Name         string    // Display name.
	Role         Role      // fisherman or authority.
	BoatID       string    // Boat operated by a fisherman, or the authority station ID.
	PasswordHash string    // bcrypt hash of the password.
}
