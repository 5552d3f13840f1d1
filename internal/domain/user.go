package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can author, publish, or sponsor videos.
// Every user has exactly one Profile; the pair is created atomically.
type User struct {
	ID        uuid.UUID
	Username  string
	Name      string
	Email     string
	IsActive  bool
	IsStaff   bool
	CreatedAt time.Time
}

// Profile carries the role and the public presentation of a user.
type Profile struct {
	UserID   uuid.UUID
	Role     Role
	Bio      string
	Quote    string
	Avatar   string
	Cover    string
	Website  string
	Facebook string
}

// Actor is the authenticated identity an operation executes on behalf of.
// A nil *Actor means the request is anonymous.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     Role
	IsActive bool
	IsStaff  bool
}

// ActorOf builds an Actor from a user and its profile.
func ActorOf(u User, p Profile) Actor {
	return Actor{
		ID:       u.ID,
		Username: u.Username,
		Role:     p.Role,
		IsActive: u.IsActive,
		IsStaff:  u.IsStaff,
	}
}
