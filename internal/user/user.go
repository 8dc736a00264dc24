// Package user generates synthetic casino user documents for seeding a
// document database.
package user

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the account tier that drives the balance rule.
type Role string

const (
	RoleVIP    Role = "vip"
	RoleTrial  Role = "trial"
	RoleNormal Role = "normal"
)

// Roles lists every role in display order.
var Roles = []Role{RoleVIP, RoleTrial, RoleNormal}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleVIP, RoleTrial, RoleNormal:
		return true
	}
	return false
}

// User is one generated account document.
type User struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"password"`
	Phone     string             `bson:"phone" json:"phone"`
	Role      Role               `bson:"role" json:"role"`
	Balance   int64              `bson:"balance" json:"balance"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	LastLogin *time.Time         `bson:"last_login" json:"last_login"`
	Active    bool               `bson:"active" json:"active"`
}

// Username returns the local part of the email address.
func (u User) Username() string {
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}
