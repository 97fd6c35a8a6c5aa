package handler

import (
	"time"

	"github.com/datharnu/povBackend/internal/account"
)

// userResponse is the only outward-facing account shape. There is no
// password field to leak.
type userResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	GoogleID  string    `json:"googleId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(a *account.Account, includeGoogleID bool) userResponse {
	resp := userResponse{
		ID:        a.ID,
		FullName:  a.FullName,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if includeGoogleID {
		resp.GoogleID = a.GoogleID
	}
	return resp
}
