package usecase

import (
	"branch-reservations/internal/domain/access"
	"branch-reservations/internal/domain/user"
	"branch-reservations/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (access.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (access.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return access.Actor{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return access.Actor{}, err
	}

	return access.Actor{
		UserID:      claims.UserID,
		Username:    claims.Username,
		DisplayName: claims.Name,
		Role:        role,
		Branch:      claims.Branch,
	}, nil
}
