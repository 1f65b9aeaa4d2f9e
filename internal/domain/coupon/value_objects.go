package coupon

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"regexp"
	"strings"
	"time"

	"fervo/internal/pkg/errs"
)

const (
	CodePrefix       = "FERVO-"
	codeSuffixLength = 5
	codeAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrInvalidCouponCode = errs.New("invalid coupon code format")
	ErrCouponNotFound    = errs.New("coupon not found")
	ErrAlreadyRedeemed   = errs.New("coupon already redeemed")
	ErrWrongVenue        = errs.New("coupon not valid at this venue")
	ErrInvalidStatus     = errs.New("invalid coupon status")
)

var couponCodeRegex = regexp.MustCompile(`^FERVO-[0-9]{6}-[A-Z0-9]{5}$`)

type Code string

// NormalizeCode trims and upper-cases user input before lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NewCouponCode(code string) (Code, error) {
	code = NormalizeCode(code)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// GenerateCode builds FERVO-<last 6 digits of unix ms>-<5 random [A-Z0-9]>.
// A nil source uses crypto/rand.
func GenerateCode(now time.Time, source io.Reader) (Code, error) {
	if source == nil {
		source = rand.Reader
	}
	limit := big.NewInt(int64(len(codeAlphabet)))
	suffix := make([]byte, codeSuffixLength)
	for i := range suffix {
		n, err := rand.Int(source, limit)
		if err != nil {
			return "", errs.Wrap(err, "generate coupon suffix")
		}
		suffix[i] = codeAlphabet[n.Int64()]
	}
	ms := now.UnixMilli() % 1_000_000
	return Code(fmt.Sprintf("%s%06d-%s", CodePrefix, ms, suffix)), nil
}

type Status string

const (
	StatusActive   Status = "active"
	StatusRedeemed Status = "redeemed"
)

func (s Status) String() string { return string(s) }

func NewStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusRedeemed:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}
