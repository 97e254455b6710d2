package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values stored on a user document. A missing role is treated the same
// as RoleUser.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
	RoleUser   = "user"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // Hide from JSON responses
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
