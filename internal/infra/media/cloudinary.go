package media

import (
	"context"
	"fmt"
	"io"
	"time"

	"fervo/internal/pkg/errs"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
	now    func() time.Time
}

func NewCloudinaryStore(url, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, errs.Wrap(err, "configure cloudinary")
	}
	return &CloudinaryStore{cld: cld, folder: folder, now: time.Now}, nil
}

// UploadVenueImage stores the file under a new public id and returns its HTTPS URL.
func (s *CloudinaryStore) UploadVenueImage(ctx context.Context, partnerID uuid.UUID, _ string, file io.Reader) (string, error) {
	publicID := fmt.Sprintf("venue_%s_%d", partnerID, s.now().UnixNano())
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:    s.folder,
		PublicID:  publicID,
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return "", errs.WrapAs(err, "cloudinary upload", errs.ErrIntegrationFailed)
	}
	if resp.Error.Message != "" {
		return "", errs.Mark(errs.New("cloudinary upload: "+resp.Error.Message), errs.ErrIntegrationFailed)
	}
	return resp.SecureURL, nil
}

type Disabled struct{}

func (Disabled) UploadVenueImage(context.Context, uuid.UUID, string, io.Reader) (string, error) {
	return "", errs.ErrIntegrationDisabled
}
