//go:build unit || e2e

package builder

import (
	reqdto "fervo/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO(role, displayName string) reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:       a.Email,
		Password:    a.Password,
		Role:        role,
		DisplayName: displayName,
	}
}
