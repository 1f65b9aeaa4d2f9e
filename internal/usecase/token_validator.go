package usecase

import (
	"fervo/internal/domain/user"
	"fervo/internal/pkg/errs"
	"fervo/internal/pkg/jwt"

	"github.com/google/uuid"
)

var (
	// ErrAccessTokenExpired tells clients to call /api/auth/refresh.
	ErrAccessTokenExpired = errs.New("access token expired")
	ErrAccessTokenInvalid = errs.New("access token invalid")
)

// TokenValidator resolves an access token to the caller's id and role for middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		if errs.Is(err, jwt.ErrExpiredToken) {
			return uuid.Nil, "", errs.Mark(err, ErrAccessTokenExpired)
		}
		return uuid.Nil, "", errs.Mark(err, ErrAccessTokenInvalid)
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", ErrAccessTokenInvalid
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Mark(err, ErrAccessTokenInvalid)
	}
	return claims.UserID, role, nil
}
