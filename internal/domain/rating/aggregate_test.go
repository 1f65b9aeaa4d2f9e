//go:build unit

package rating_test

import (
	"strings"
	"testing"
	"time"

	"fervo/internal/domain/rating"
	"fervo/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(t *testing.T, v int) rating.Score {
	t.Helper()
	s, err := rating.NewScore(v)
	require.NoError(t, err)
	return s
}

func TestAggregate_Add(t *testing.T) {
	agg, err := rating.NewAggregate(0, 0)
	require.NoError(t, err)

	agg = agg.Add(score(t, 4))
	assert.Equal(t, 1, agg.Count())
	assert.InDelta(t, 4.0, agg.Average(), 1e-9)

	agg = agg.Add(score(t, 2))
	assert.Equal(t, 2, agg.Count())
	assert.InDelta(t, 3.0, agg.Average(), 1e-9)

	agg = agg.Add(score(t, 5))
	assert.Equal(t, 3, agg.Count())
	assert.InDelta(t, 11.0/3.0, agg.Average(), 1e-9)
}

func TestAggregate_Replace(t *testing.T) {
	agg, err := rating.NewAggregate(3.0, 2)
	require.NoError(t, err)

	got, err := agg.Replace(score(t, 2), score(t, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count(), "resubmission never changes the count")
	assert.InDelta(t, 4.5, got.Average(), 1e-9)

	_, err = rating.Aggregate{}.Replace(score(t, 2), score(t, 5))
	testutil.AssertErrorIs(t, err, rating.ErrEmptyAggregate)
}

func TestAggregate_Remove(t *testing.T) {
	tests := []struct {
		name      string
		average   float64
		count     int
		old       int
		wantAvg   float64
		wantCount int
		wantErr   error
	}{
		{name: "two ratings down to one", average: 3.0, count: 2, old: 4, wantAvg: 2.0, wantCount: 1},
		{name: "last rating resets to zero", average: 5.0, count: 1, old: 5, wantAvg: 0, wantCount: 0},
		{name: "empty aggregate", average: 0, count: 0, old: 3, wantErr: rating.ErrEmptyAggregate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg, err := rating.NewAggregate(tt.average, tt.count)
			require.NoError(t, err)

			got, err := agg.Remove(score(t, tt.old))
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, got.Count())
			assert.InDelta(t, tt.wantAvg, got.Average(), 1e-9)
		})
	}
}

func TestAggregate_Apply(t *testing.T) {
	agg, err := rating.NewAggregate(4.0, 1)
	require.NoError(t, err)

	added, err := agg.Apply(nil, score(t, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, added.Count())
	assert.InDelta(t, 3.0, added.Average(), 1e-9)

	prev := score(t, 4)
	replaced, err := agg.Apply(&prev, score(t, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, replaced.Count())
	assert.InDelta(t, 1.0, replaced.Average(), 1e-9)
}

func TestNewAggregate_Invalid(t *testing.T) {
	_, err := rating.NewAggregate(3.5, 0)
	testutil.AssertErrorIs(t, err, rating.ErrInvalidAggregate)

	_, err = rating.NewAggregate(0, -1)
	testutil.AssertErrorIs(t, err, rating.ErrInvalidAggregate)
}

func TestNewRating(t *testing.T) {
	eventID, userID := uuid.New(), uuid.New()
	now := time.Now()

	t.Run("natural key and trimmed comment", func(t *testing.T) {
		r, err := rating.NewRating(eventID, userID, uuid.New(), 5, "  loved it ", now)
		require.NoError(t, err)
		assert.Equal(t, eventID.String()+"_"+userID.String(), r.ID())
		assert.Equal(t, "loved it", r.Comment().String())
		assert.Equal(t, 5, r.Score().Value())
	})

	t.Run("score out of range", func(t *testing.T) {
		for _, v := range []int{0, 6, -1} {
			_, err := rating.NewRating(eventID, userID, uuid.New(), v, "", now)
			testutil.AssertErrorIs(t, err, rating.ErrInvalidScore)
		}
	})

	t.Run("comment too long", func(t *testing.T) {
		_, err := rating.NewRating(eventID, userID, uuid.New(), 3, strings.Repeat("x", rating.MaxCommentLength+1), now)
		testutil.AssertErrorIs(t, err, rating.ErrCommentTooLong)
	})

	t.Run("empty comment allowed", func(t *testing.T) {
		r, err := rating.NewRating(eventID, userID, uuid.New(), 3, "", now)
		require.NoError(t, err)
		assert.True(t, r.Comment().IsEmpty())
	})
}
