// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RoleUser is the only role assigned by the registration flow.
// 将来のロール追加を見越した列挙ですが、このフローが作るのはuserのみです。
const RoleUser = "user"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user, assigned by the store on creation.
	ID bson.ObjectID `bson:"_id,omitempty" json:"id"`

	// Name is the user's display name.
	Name string `bson:"name" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `bson:"email" json:"email"`

	// PasswordHash is the salted bcrypt digest for the user.
	// This should never store plaintext passwords and is never serialized to JSON.
	PasswordHash string `bson:"passwordHash" json:"-"`

	// Role is the user's role tag.
	Role string `bson:"role" json:"role"`

	// CreatedAt is the timestamp when the user was created. It is immutable.
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
