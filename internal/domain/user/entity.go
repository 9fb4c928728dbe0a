package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	displayName  string
	passwordHash string
	role         Role
	branch       Branch
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, displayName, passwordHash string, role Role, branch Branch) *User {
	if displayName == "" {
		displayName = username.Value()
	}
	return &User{
		id:           uuid.New(),
		username:     username,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		branch:       branch,
		isActive:     true,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) DisplayName() string  { return u.displayName }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Branch() Branch       { return u.branch }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
