//go:build unit

package validation_test

import (
	"errors"
	"testing"

	"fervo/internal/handler/dto/request"
	"fervo/internal/handler/httperr"
	"fervo/internal/handler/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, validation.RegisterOn(v))
	return v
}

func TestVenueCategory(t *testing.T) {
	v := newValidator(t)

	for _, tc := range []struct {
		category string
		valid    bool
	}{
		{"club", true},
		{"live_music", true},
		{"rooftop", true},
		{"casino", false},
		{"", false},
	} {
		t.Run(tc.category, func(t *testing.T) {
			err := v.Var(tc.category, "venue_category")
			assert.Equal(t, tc.valid, err == nil, "err: %v", err)
		})
	}
}

func TestValidationDetail_UsesWireNames(t *testing.T) {
	v := newValidator(t)

	req := request.RegisterRequest{
		Email:       "owner@fervo.test",
		Password:    "password123",
		Role:        "partner",
		DisplayName: "Owner",
		Venue: &request.VenueRequest{
			Name:     "Club Fervo",
			Latitude: 91,
			Category: "casino",
		},
	}

	got := httperr.ValidationDetail(v.Struct(req))
	want := []httperr.FieldError{
		{Field: "venue.latitude", Rule: "latitude"},
		{Field: "venue.category", Rule: "venue_category"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ValidationDetail mismatch (-want +got):\n%s", diff)
	}
}

func TestValidationDetail_NonValidationError(t *testing.T) {
	assert.Nil(t, httperr.ValidationDetail(errors.New("unexpected EOF")))
}
