//go:build unit

package event_test

import (
	"strings"
	"testing"
	"time"

	"fervo/internal/domain/event"
	"fervo/tests/common/builder"
	"fervo/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(*builder.EventBuilder)
		errIs  error
	}{
		{name: "free event OK", mutate: func(b *builder.EventBuilder) {}},
		{
			name: "paid event OK",
			mutate: func(b *builder.EventBuilder) {
				b.IsFree = false
				b.PriceCents = 1500
			},
		},
		{name: "blank name NG", mutate: func(b *builder.EventBuilder) { b.Name = "  " }, errIs: event.ErrInvalidName},
		{name: "name too long NG", mutate: func(b *builder.EventBuilder) { b.Name = strings.Repeat("n", 121) }, errIs: event.ErrInvalidName},
		{name: "end equals start NG", mutate: func(b *builder.EventBuilder) { b.EndTime = b.StartTime }, errIs: event.ErrInvalidWindow},
		{name: "end before start NG", mutate: func(b *builder.EventBuilder) { b.EndTime = b.StartTime.Add(-time.Hour) }, errIs: event.ErrInvalidWindow},
		{
			name: "negative price NG",
			mutate: func(b *builder.EventBuilder) {
				b.IsFree = false
				b.PriceCents = -1
			},
			errIs: event.ErrNegativePrice,
		},
		{name: "free event with price NG", mutate: func(b *builder.EventBuilder) { b.PriceCents = 500 }, errIs: event.ErrFreeEventPriced},
		{name: "bad currency NG", mutate: func(b *builder.EventBuilder) { b.Currency = "EURO" }, errIs: event.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := builder.NewEventBuilder().With(tt.mutate).BuildDomain(now)
			if tt.errIs != nil {
				testutil.RequireErrorIs(t, err, tt.errIs)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, e.ID())
			assert.Len(t, e.CheckInToken(), 32)
			assert.Equal(t, now, e.CreatedAt())
		})
	}
}

func TestEvent_DefaultsAndNormalization(t *testing.T) {
	e, err := builder.NewEventBuilder().With(func(b *builder.EventBuilder) {
		b.Currency = " usd "
		b.MusicGenre = " house "
	}).BuildDomain(time.Now())
	require.NoError(t, err)
	assert.Equal(t, "USD", e.Pricing().Currency())
	assert.Equal(t, "house", e.MusicGenre())

	e, err = builder.NewEventBuilder().With(func(b *builder.EventBuilder) { b.Currency = "" }).BuildDomain(time.Now())
	require.NoError(t, err)
	assert.Equal(t, event.DefaultCurrency, e.Pricing().Currency())
}

func TestEvent_Window(t *testing.T) {
	start := time.Date(2026, 6, 5, 22, 0, 0, 0, time.UTC)
	w, err := event.NewWindow(start, start.Add(4*time.Hour))
	require.NoError(t, err)

	assert.True(t, w.Contains(start))
	assert.True(t, w.Contains(start.Add(2*time.Hour)))
	assert.False(t, w.Contains(start.Add(4*time.Hour)), "end is exclusive")
	assert.False(t, w.Contains(start.Add(-time.Second)))

	assert.False(t, w.HasEnded(start.Add(time.Hour)))
	assert.True(t, w.HasEnded(start.Add(4*time.Hour)))
}

func TestEvent_RegenerateCheckInToken(t *testing.T) {
	now := time.Now()
	e, err := builder.NewEventBuilder().BuildDomain(now)
	require.NoError(t, err)

	old := e.CheckInToken()
	later := now.Add(time.Minute)
	require.NoError(t, e.RegenerateCheckInToken(later))

	assert.NotEqual(t, old, e.CheckInToken())
	assert.Equal(t, later, e.UpdatedAt())
}

func TestEvent_UpdateKeepsTokenAndOnFailureState(t *testing.T) {
	now := time.Now()
	b := builder.NewEventBuilder()
	e, err := b.BuildDomain(now)
	require.NoError(t, err)
	token := e.CheckInToken()

	p := b.Params()
	p.Name = "Saturday House"
	require.NoError(t, e.Update(p, now.Add(time.Hour)))
	assert.Equal(t, "Saturday House", e.Name().String())
	assert.Equal(t, token, e.CheckInToken())

	p.EndTime = p.StartTime
	testutil.AssertErrorIs(t, e.Update(p, now.Add(2*time.Hour)), event.ErrInvalidWindow)
	assert.Equal(t, "Saturday House", e.Name().String())
}
