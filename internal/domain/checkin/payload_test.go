//go:build unit

package checkin_test

import (
	"testing"

	"fervo/internal/domain/checkin"
	"fervo/tests/common/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePayload(t *testing.T) {
	eventID, partnerID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{
			name: "valid payload",
			raw:  `{"eventId":"` + eventID.String() + `","partnerId":"` + partnerID.String() + `","token":"abc"}`,
		},
		{
			name: "surrounding whitespace tolerated",
			raw:  "\n " + `{"eventId":"` + eventID.String() + `","partnerId":"` + partnerID.String() + `","token":"abc"}` + " \n",
		},
		{name: "not json", raw: "FERVO", wantErr: true},
		{name: "missing token", raw: `{"eventId":"` + eventID.String() + `","partnerId":"` + partnerID.String() + `"}`, wantErr: true},
		{name: "empty partner", raw: `{"eventId":"` + eventID.String() + `","partnerId":"","token":"abc"}`, wantErr: true},
		{name: "event id not a uuid", raw: `{"eventId":"evt-1","partnerId":"` + partnerID.String() + `","token":"abc"}`, wantErr: true},
		{name: "partner id not a uuid", raw: `{"eventId":"` + eventID.String() + `","partnerId":"p-1","token":"abc"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := checkin.ParsePayload(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				testutil.AssertErrorIs(t, err, checkin.ErrMalformedPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, eventID, p.EventID)
			assert.Equal(t, partnerID, p.PartnerID)
			assert.Equal(t, "abc", p.Token)
		})
	}
}

func TestPayload_EncodeRoundTrip(t *testing.T) {
	in := checkin.Payload{EventID: uuid.New(), PartnerID: uuid.New(), Token: "0123456789abcdef"}

	raw, err := in.Encode()
	require.NoError(t, err)
	assert.Contains(t, raw, `"eventId":"`+in.EventID.String()+`"`)

	out, err := checkin.ParsePayload(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPayload_VerifyToken(t *testing.T) {
	p := checkin.Payload{EventID: uuid.New(), PartnerID: uuid.New(), Token: "secret-token"}

	assert.NoError(t, p.VerifyToken("secret-token"))
	testutil.AssertErrorIs(t, p.VerifyToken("Secret-Token"), checkin.ErrInvalidToken)
	testutil.AssertErrorIs(t, p.VerifyToken(""), checkin.ErrInvalidToken)
}
