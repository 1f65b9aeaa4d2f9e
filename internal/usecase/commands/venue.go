package commands

import (
	"context"
	"io"
	"path"
	"strings"

	"fervo/internal/domain/venue"
	"fervo/internal/infra"
	"fervo/internal/pkg/clock"
	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedImage = errs.New("image must be jpeg, png or webp")
)

var allowedImageExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

type VenueCommands interface {
	UpdateProfile(ctx context.Context, partnerID uuid.UUID, p venue.Params) error
	UploadImage(ctx context.Context, partnerID uuid.UUID, filename string, file io.Reader) (string, error)
}

type venueUseCaseImpl struct {
	uow    shared.UnitOfWork
	images shared.ImageStore
	clock  clock.Clock
}

func NewVenueUseCase(uow shared.UnitOfWork, images shared.ImageStore, clk clock.Clock) VenueCommands {
	return &venueUseCaseImpl{uow: uow, images: images, clock: clk}
}

func (uc *venueUseCaseImpl) UpdateProfile(ctx context.Context, partnerID uuid.UUID, p venue.Params) error {
	v, err := venue.NewVenue(partnerID, p)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Venues().UpdateProfile(ctx, tx.DB(), v); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return venue.ErrVenueNotFound
			}
			return derr
		}
		return shared.EnqueueDirectorySync(ctx, tx, shared.TopicVenueChanged, shared.DirectorySyncPayload{PartnerID: partnerID}, uc.clock.Now())
	})
}

func (uc *venueUseCaseImpl) UploadImage(ctx context.Context, partnerID uuid.UUID, filename string, file io.Reader) (string, error) {
	if !allowedImageExt[strings.ToLower(path.Ext(filename))] {
		return "", ErrUnsupportedImage
	}

	if _, err := uc.uow.CommandReads().VenueByID(ctx, partnerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", venue.ErrVenueNotFound
		}
		return "", err
	}

	url, err := uc.images.UploadVenueImage(ctx, partnerID, filename, file)
	if err != nil {
		return "", err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Venues().UpdateImage(ctx, tx.DB(), partnerID, url); derr != nil {
			return derr
		}
		return shared.EnqueueDirectorySync(ctx, tx, shared.TopicVenueChanged, shared.DirectorySyncPayload{PartnerID: partnerID}, uc.clock.Now())
	})
	if err != nil {
		return "", err
	}
	return url, nil
}
