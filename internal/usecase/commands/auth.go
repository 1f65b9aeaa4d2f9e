package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"fervo/internal/domain/user"
	"fervo/internal/domain/venue"
	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/errs"
	"fervo/internal/pkg/jwt"
	"fervo/internal/pkg/password"
	"fervo/internal/usecase/shared"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailTaken           = errs.New("email already registered")
	ErrVenueProfileRequired = errs.New("partner registration requires a venue profile")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	User      *shared.UserSnapshot
	TokenPair *TokenPair
}

type RegisterRequest struct {
	Email       string
	Password    string
	Role        string
	DisplayName string
	// Venue is required when Role is partner and ignored otherwise.
	Venue *venue.Params
}

type UpdateProfileRequest struct {
	DisplayName string
	AvatarURL   *string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, pass string) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*shared.UserSnapshot, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}
	displayName, err := user.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, err
	}
	if role.IsPartner() && req.Venue == nil {
		return nil, ErrVenueProfileRequired
	}

	hash, err := password.Hash(credentials.Password.Value())
	if err != nil {
		return nil, err
	}

	var created *shared.UserSnapshot
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Users().Create(ctx, tx.DB(), user.NewUser(credentials.Email, hash, role, displayName))
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrEmailTaken
			}
			return derr
		}
		created = snap

		if !role.IsPartner() {
			return nil
		}
		v, derr := venue.NewVenue(snap.ID, *req.Venue)
		if derr != nil {
			return derr
		}
		if derr = tx.Venues().Create(ctx, tx.DB(), v); derr != nil {
			return derr
		}
		return shared.EnqueueDirectorySync(ctx, tx, shared.TopicVenueChanged, shared.DirectorySyncPayload{PartnerID: snap.ID}, a.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(created.ID, role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: created, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*AuthResult, error) {
	credentials, err := user.NewCredentials(email, pass)
	if err != nil {
		// A malformed login is answered like a wrong password
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			password.Equalize(credentials.Password.Value())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err = password.Verify(snap.PasswordHash, credentials.Password.Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := a.issueTokens(snap.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), snap.ID)
	})
	if err != nil {
		// login already succeeded; last_login is informational
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &AuthResult{User: snap, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// the stored role wins over the one baked into the old token
	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	return a.issueTokens(snap.ID, role)
}

func (a *authCommandsImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*shared.UserSnapshot, error) {
	displayName, err := user.NewDisplayName(req.DisplayName)
	if err != nil {
		return nil, err
	}

	var updated *shared.UserSnapshot
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return derr
		}
		u := user.Reconstruct(snap.ID, snap.Email, snap.PasswordHash, snap.Role, snap.DisplayName, snap.AvatarURL, snap.LastLogin, snap.CreatedAt, snap.UpdatedAt)
		u.UpdateProfile(displayName, req.AvatarURL)
		if derr = tx.Users().UpdateProfile(ctx, tx.DB(), u); derr != nil {
			return derr
		}
		snap.DisplayName = u.DisplayName().Value()
		snap.AvatarURL = u.AvatarURL()
		updated = snap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
