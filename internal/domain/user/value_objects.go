package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidRole     = errors.New("invalid role")
	ErrBranchRequired  = errors.New("branch is required")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,64}$`)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Branch is the home branch of a user plus the details printed in pickup notices.
type Branch struct {
	Name    string
	Address string
	Hours   string
	Phone   string
}

func NewBranch(name, address, hours, phone string) (Branch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Branch{}, ErrBranchRequired
	}
	return Branch{
		Name:    name,
		Address: strings.TrimSpace(address),
		Hours:   strings.TrimSpace(hours),
		Phone:   strings.TrimSpace(phone),
	}, nil
}
