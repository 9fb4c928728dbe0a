package access

import (
	"errors"
	"strings"

	"branch-reservations/internal/domain/user"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("forbidden")

// Actor is the authenticated caller as carried by the access token.
type Actor struct {
	UserID      uuid.UUID
	Username    string
	DisplayName string
	Role        user.Role
	Branch      string
}

// Agent is the name stamped on audit fields.
func (a Actor) Agent() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

type Scope string

const (
	// ScopeOutgoing lists reservations created at the home branch.
	ScopeOutgoing Scope = "outgoing"
	// ScopeIncoming lists reservations travelling to the home branch.
	ScopeIncoming Scope = "incoming"
)

func ParseScope(s string) Scope {
	if Scope(strings.ToLower(strings.TrimSpace(s))) == ScopeIncoming {
		return ScopeIncoming
	}
	return ScopeOutgoing
}

// Filter is the row restriction derived from an actor. Empty branch fields mean no restriction.
type Filter struct {
	OriginBranch      string
	DestinationBranch string
	IncludeDeleted    bool
	Search            string
	// MatchNone is set for branch-bound actors without a branch.
	MatchNone bool
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}

// HasBranch reports whether a is bound to a branch or needs none.
func (a Actor) HasBranch() bool {
	return a.IsAdmin() || strings.TrimSpace(a.Branch) != ""
}

// FilterFor returns the visibility rule for a listing. Unknown roles get the staff rule.
func FilterFor(a Actor, scope Scope, search string) Filter {
	f := Filter{Search: strings.TrimSpace(search)}

	switch a.Role {
	case user.RoleAdmin:
		f.IncludeDeleted = true
		return f
	case user.RoleBranchManager:
		f.IncludeDeleted = true
	default:
		f.IncludeDeleted = false
	}

	if strings.TrimSpace(a.Branch) == "" {
		return Filter{MatchNone: true}
	}
	if scope == ScopeIncoming {
		f.DestinationBranch = a.Branch
	} else {
		f.OriginBranch = a.Branch
	}
	return f
}

// Record is the part of a reservation visibility depends on.
type Record struct {
	OriginBranch      string
	DestinationBranch string
	Deleted           bool
}

func (f Filter) Allows(r Record) bool {
	if f.MatchNone {
		return false
	}
	if r.Deleted && !f.IncludeDeleted {
		return false
	}
	if f.OriginBranch != "" && r.OriginBranch != f.OriginBranch {
		return false
	}
	if f.DestinationBranch != "" && r.DestinationBranch != f.DestinationBranch {
		return false
	}
	return true
}

// CanAccess grants single-record access when the record is visible under either scope.
func CanAccess(a Actor, r Record) bool {
	return FilterFor(a, ScopeOutgoing, "").Allows(r) || FilterFor(a, ScopeIncoming, "").Allows(r)
}

func RequireAdmin(a Actor) error {
	if !a.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func RequirePrivileged(a Actor) error {
	if !a.Role.IsPrivileged() {
		return ErrForbidden
	}
	return nil
}
