//go:build unit

package venue_test

import (
	"testing"

	"fervo/internal/domain/venue"
	"fervo/tests/common/builder"
	"fervo/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVenue(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.VenueBuilder)
		errIs  error
	}{
		{name: "defaults OK", mutate: func(b *builder.VenueBuilder) {}},
		{name: "category case-insensitive OK", mutate: func(b *builder.VenueBuilder) { b.Category = " Live_Music " }},
		{name: "poles OK", mutate: func(b *builder.VenueBuilder) { b.Latitude = 90 }},
		{name: "antimeridian OK", mutate: func(b *builder.VenueBuilder) { b.Longitude = -180 }},
		{name: "latitude out of range NG", mutate: func(b *builder.VenueBuilder) { b.Latitude = 90.0001 }, errIs: venue.ErrInvalidLatitude},
		{name: "longitude out of range NG", mutate: func(b *builder.VenueBuilder) { b.Longitude = 181 }, errIs: venue.ErrInvalidLongitude},
		{name: "unknown category NG", mutate: func(b *builder.VenueBuilder) { b.Category = "casino" }, errIs: venue.ErrInvalidCategory},
		{name: "blank name NG", mutate: func(b *builder.VenueBuilder) { b.Name = "" }, errIs: venue.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewVenueBuilder().With(tt.mutate)
			v, err := venue.NewVenue(b.ID, b.Params())
			if tt.errIs != nil {
				testutil.RequireErrorIs(t, err, tt.errIs)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.ID, v.ID())
			assert.True(t, v.Category().IsValid())
		})
	}
}

func TestVenue_UpdateProfileAndImage(t *testing.T) {
	b := builder.NewVenueBuilder()
	v, err := venue.NewVenue(b.ID, b.Params())
	require.NoError(t, err)
	assert.Nil(t, v.ImageURL())

	p := b.Params()
	p.Name = "  Sala Fervo "
	p.Category = "lounge"
	require.NoError(t, v.UpdateProfile(p))
	assert.Equal(t, "Sala Fervo", v.Name().String())
	assert.Equal(t, venue.CategoryLounge, v.Category())

	v.SetImageURL("https://res.cloudinary.com/demo/venue.jpg")
	require.NotNil(t, v.ImageURL())
	assert.Equal(t, "https://res.cloudinary.com/demo/venue.jpg", *v.ImageURL())
}
