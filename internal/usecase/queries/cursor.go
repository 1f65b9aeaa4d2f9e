package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"fervo/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200

	cursorVersion = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// Cursor is an opaque keyset position: "v1:<unix micros>-<key>" in unpadded base64url.
// Microseconds match PostgreSQL timestamp precision so the boundary row is never repeated.
type Cursor struct {
	After string `json:"after,omitempty"`
}

func EncodeAfterKeyCursor(t time.Time, key string) string {
	raw := cursorVersion + ":" + strconv.FormatInt(t.UnixMicro(), 10) + "-" + key
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterKeyCursor(cursor string) (time.Time, string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(cursor, "="))
	if err != nil {
		return time.Time{}, "", errs.WrapAs(err, "cursor encoding", ErrInvalidCursor)
	}
	payload, ok := strings.CutPrefix(string(decoded), cursorVersion+":")
	if !ok {
		return time.Time{}, "", errs.Wrap(ErrInvalidCursor, "unsupported cursor version")
	}
	micros, key, ok := strings.Cut(payload, "-")
	if !ok || key == "" {
		return time.Time{}, "", errs.Wrap(ErrInvalidCursor, "expected <micros>-<key>")
	}
	ts, err := strconv.ParseInt(micros, 10, 64)
	if err != nil {
		return time.Time{}, "", errs.WrapAs(err, "cursor timestamp", ErrInvalidCursor)
	}
	return time.UnixMicro(ts).UTC(), key, nil
}

// EncodeAfterCursor is EncodeAfterKeyCursor for uuid-keyed rows.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	return EncodeAfterKeyCursor(t, id.String())
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	t, key, err := DecodeAfterKeyCursor(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	id, err := uuid.Parse(key)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.WrapAs(err, "cursor id", ErrInvalidCursor)
	}
	return t, id, nil
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
