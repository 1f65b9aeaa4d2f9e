package event

import (
	"strings"
	"time"
	"unicode/utf8"

	"fervo/internal/pkg/errs"
)

const (
	MaxNameLength   = 120
	DefaultCurrency = "EUR"
)

var (
	ErrInvalidName     = errs.New("event name must be between 1 and 120 characters")
	ErrInvalidWindow   = errs.New("event end time must be after start time")
	ErrNegativePrice   = errs.New("price cannot be negative")
	ErrFreeEventPriced = errs.New("free events cannot have a price")
	ErrInvalidCurrency = errs.New("currency must be a 3-letter ISO code")
	ErrEventNotFound   = errs.New("event not found")
)

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n == 0 || n > MaxNameLength {
		return Name{}, ErrInvalidName
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Window is the half-open interval [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !end.After(start) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

func (w Window) HasEnded(t time.Time) bool {
	return !t.Before(w.end)
}

type Pricing struct {
	isFree     bool
	priceCents int
	currency   string
}

func NewPricing(isFree bool, priceCents int, currency string) (Pricing, error) {
	if priceCents < 0 {
		return Pricing{}, ErrNegativePrice
	}
	if isFree && priceCents != 0 {
		return Pricing{}, ErrFreeEventPriced
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		return Pricing{}, ErrInvalidCurrency
	}
	return Pricing{isFree: isFree, priceCents: priceCents, currency: currency}, nil
}

func (p Pricing) IsFree() bool     { return p.isFree }
func (p Pricing) PriceCents() int  { return p.priceCents }
func (p Pricing) Currency() string { return p.currency }
