package commands

import (
	"context"
	"strings"

	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidPushToken = errs.New("invalid push token")

const maxPushTokenLength = 255

type PushTokenCommands interface {
	// Register moves the token to userID if another account held it.
	Register(ctx context.Context, userID uuid.UUID, token string) error
	Remove(ctx context.Context, userID uuid.UUID, token string) error
}

type pushTokenUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPushTokenUseCase(uow shared.UnitOfWork) PushTokenCommands {
	return &pushTokenUseCaseImpl{uow: uow}
}

func (uc *pushTokenUseCaseImpl) Register(ctx context.Context, userID uuid.UUID, token string) error {
	token, err := normalizePushToken(token)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PushTokens().Upsert(ctx, tx.DB(), userID, token)
	})
}

func (uc *pushTokenUseCaseImpl) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	token, err := normalizePushToken(token)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.PushTokens().Delete(ctx, tx.DB(), userID, token)
	})
}

func normalizePushToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" || len(token) > maxPushTokenLength {
		return "", ErrInvalidPushToken
	}
	return token, nil
}
