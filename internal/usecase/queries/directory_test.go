//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fervo/internal/pkg/clock"
	"fervo/internal/usecase/queries"
	"fervo/tests/common/testutil"
	queriesmock "fervo/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListVenues_SearchParams(t *testing.T) {
	now := time.Date(2026, 7, 3, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		search string
		want   string
	}{
		{name: "plain text", search: "  Fervo ", want: "Fervo"},
		{name: "percent matches literally", search: "100%", want: `100\%`},
		{name: "underscore matches literally", search: "club_x", want: `club\_x`},
		{name: "backslash is escaped first", search: `a\b%`, want: `a\\b\%`},
		{name: "empty stays empty", search: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			venues := queriesmock.NewMockVenueReadStore(ctrl)
			q := queries.NewDirectoryQueries(venues, queriesmock.NewMockEventReadStore(ctrl), nil, clock.NewMockClock(now))

			var got queries.VenueListParams
			venues.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p queries.VenueListParams) ([]*queries.VenueView, error) {
					got = p
					return nil, nil
				})

			_, err := q.ListVenues(context.Background(), queries.VenueFilter{Search: tt.search, Category: " Club ", LiveNow: true})
			require.NoError(t, err)

			want := queries.VenueListParams{Search: tt.want, Category: "club", LiveAt: &now, Limit: got.Limit}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("params mismatch (-want +got):\n%s", diff)
			}
			assert.Positive(t, got.Limit)
		})
	}
}

func TestListVenues_RejectsInvertedBoundingBox(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := queries.NewDirectoryQueries(queriesmock.NewMockVenueReadStore(ctrl), queriesmock.NewMockEventReadStore(ctrl), nil, clock.NewMockClock(time.Now()))

	minLat, maxLat := 45.0, 44.0
	_, err := q.ListVenues(context.Background(), queries.VenueFilter{MinLat: &minLat, MaxLat: &maxLat})
	testutil.AssertErrorIs(t, err, queries.ErrInvalidBoundingBox)
}
