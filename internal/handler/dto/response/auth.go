package response

import (
	"toaigo/internal/usecase/queries"
)

type UserResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	MerchantID *string `json:"merchantId,omitempty"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

func FromUserView(v queries.UserView) UserResponse {
	return UserResponse{
		ID:         v.ID,
		Name:       v.Name,
		Role:       v.Role,
		MerchantID: v.MerchantID,
	}
}

func FromUserViews(vs []queries.UserView) []UserResponse {
	out := make([]UserResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromUserView(v))
	}
	return out
}
