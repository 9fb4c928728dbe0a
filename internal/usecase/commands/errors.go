package commands

import "branch-reservations/internal/pkg/errs"

// invalid marks a rejected input and keeps the domain message as the user-facing hint.
func invalid(err, kind error) error {
	return errs.WithHint(errs.Mark(err, kind), err.Error())
}
