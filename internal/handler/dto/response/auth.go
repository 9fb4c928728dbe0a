package response

import (
	"branch-reservations/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	Branch      string    `json:"branch"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *UserResponse `json:"user"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:          v.ID,
		Username:    v.Username,
		DisplayName: v.DisplayName,
		Role:        v.Role,
		Branch:      v.Branch,
	}
}
