package directory

import (
	"context"
	"time"

	"fervo/internal/pkg/errs"
	"fervo/internal/usecase/shared"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const (
	partnersCollection = "partners"
	eventsCollection   = "events"
)

type venueDoc struct {
	Name               string    `firestore:"name"`
	Description        string    `firestore:"description"`
	Address            string    `firestore:"address"`
	City               string    `firestore:"city"`
	Latitude           float64   `firestore:"latitude"`
	Longitude          float64   `firestore:"longitude"`
	Category           string    `firestore:"category"`
	ImageURL           *string   `firestore:"imageUrl"`
	AverageVenueRating float64   `firestore:"averageVenueRating"`
	VenueRatingCount   int       `firestore:"venueRatingCount"`
	SyncedAt           time.Time `firestore:"syncedAt"`
}

type eventDoc struct {
	PartnerID     string    `firestore:"partnerId"`
	Name          string    `firestore:"name"`
	Description   string    `firestore:"description"`
	MusicGenre    string    `firestore:"musicGenre"`
	StartTime     time.Time `firestore:"startTime"`
	EndTime       time.Time `firestore:"endTime"`
	IsFree        bool      `firestore:"isFree"`
	PriceCents    int       `firestore:"priceCents"`
	Currency      string    `firestore:"currency"`
	ShareEnabled  bool      `firestore:"shareEnabled"`
	AverageRating float64   `firestore:"averageRating"`
	RatingCount   int       `firestore:"ratingCount"`
	SyncedAt      time.Time `firestore:"syncedAt"`
}

// FirestoreMirror writes partners/{id} and partners/{id}/events/{id}.
type FirestoreMirror struct {
	client *firestore.Client
}

func NewFirestoreClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "create firestore client")
	}
	return client, nil
}

func NewFirestoreMirror(client *firestore.Client) *FirestoreMirror {
	return &FirestoreMirror{client: client}
}

func (m *FirestoreMirror) UpsertVenue(ctx context.Context, doc shared.VenueDocument) error {
	_, err := m.client.Collection(partnersCollection).Doc(doc.ID.String()).Set(ctx, venueDoc{
		Name:               doc.Name,
		Description:        doc.Description,
		Address:            doc.Address,
		City:               doc.City,
		Latitude:           doc.Latitude,
		Longitude:          doc.Longitude,
		Category:           doc.Category,
		ImageURL:           doc.ImageURL,
		AverageVenueRating: doc.AverageVenueRating,
		VenueRatingCount:   doc.VenueRatingCount,
		SyncedAt:           time.Now().UTC(),
	})
	if err != nil {
		return errs.WrapAs(err, "mirror venue", errs.ErrIntegrationFailed)
	}
	return nil
}

func (m *FirestoreMirror) UpsertEvent(ctx context.Context, doc shared.EventDocument) error {
	_, err := m.eventRef(doc.PartnerID, doc.ID).Set(ctx, eventDoc{
		PartnerID:     doc.PartnerID.String(),
		Name:          doc.Name,
		Description:   doc.Description,
		MusicGenre:    doc.MusicGenre,
		StartTime:     doc.StartTime,
		EndTime:       doc.EndTime,
		IsFree:        doc.IsFree,
		PriceCents:    doc.PriceCents,
		Currency:      doc.Currency,
		ShareEnabled:  doc.ShareEnabled,
		AverageRating: doc.AverageRating,
		RatingCount:   doc.RatingCount,
		SyncedAt:      time.Now().UTC(),
	})
	if err != nil {
		return errs.WrapAs(err, "mirror event", errs.ErrIntegrationFailed)
	}
	return nil
}

func (m *FirestoreMirror) DeleteEvent(ctx context.Context, partnerID, eventID uuid.UUID) error {
	// deleting a missing document succeeds
	_, err := m.eventRef(partnerID, eventID).Delete(ctx)
	if err != nil {
		return errs.WrapAs(err, "delete mirrored event", errs.ErrIntegrationFailed)
	}
	return nil
}

func (m *FirestoreMirror) eventRef(partnerID, eventID uuid.UUID) *firestore.DocumentRef {
	return m.client.Collection(partnersCollection).Doc(partnerID.String()).Collection(eventsCollection).Doc(eventID.String())
}

// Disabled is used when no Firestore project is configured.
type Disabled struct{}

func (Disabled) UpsertVenue(context.Context, shared.VenueDocument) error { return errs.ErrIntegrationDisabled }
func (Disabled) UpsertEvent(context.Context, shared.EventDocument) error { return errs.ErrIntegrationDisabled }
func (Disabled) DeleteEvent(context.Context, uuid.UUID, uuid.UUID) error { return errs.ErrIntegrationDisabled }
