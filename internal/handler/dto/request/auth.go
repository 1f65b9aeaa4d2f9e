package request

import (
	"fervo/internal/usecase/commands"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RegisterRequest struct {
	Email       string        `json:"email" binding:"required,email"`
	Password    string        `json:"password" binding:"required,min=8"`
	Role        string        `json:"role" binding:"required,oneof=user partner"`
	DisplayName string        `json:"display_name" binding:"required,max=60"`
	Venue       *VenueRequest `json:"venue" binding:"required_if=Role partner,omitempty"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterRequest {
	cmd := commands.RegisterRequest{
		Email:       r.Email,
		Password:    r.Password,
		Role:        r.Role,
		DisplayName: r.DisplayName,
	}
	if r.Venue != nil {
		p := r.Venue.ToParams()
		cmd.Venue = &p
	}
	return cmd
}

type UpdateProfileRequest struct {
	DisplayName string  `json:"display_name" binding:"required,max=60"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
}

func (r *UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{DisplayName: r.DisplayName, AvatarURL: r.AvatarURL}
}
