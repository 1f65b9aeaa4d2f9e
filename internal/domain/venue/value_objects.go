package venue

import (
	"strings"
	"unicode/utf8"

	"fervo/internal/pkg/errs"
)

const MaxNameLength = 120

var (
	ErrInvalidName      = errs.New("venue name must be between 1 and 120 characters")
	ErrInvalidLatitude  = errs.New("latitude must be between -90 and 90")
	ErrInvalidLongitude = errs.New("longitude must be between -180 and 180")
	ErrInvalidCategory  = errs.New("invalid venue category")
	ErrVenueNotFound    = errs.New("venue not found")
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

type Location struct {
	latitude  float64
	longitude float64
}

func NewLocation(lat, lng float64) (Location, error) {
	if lat < -90 || lat > 90 {
		return Location{}, ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return Location{}, ErrInvalidLongitude
	}
	return Location{latitude: lat, longitude: lng}, nil
}

func (l Location) Latitude() float64  { return l.latitude }
func (l Location) Longitude() float64 { return l.longitude }

type Category string

const (
	CategoryClub      Category = "club"
	CategoryBar       Category = "bar"
	CategoryLounge    Category = "lounge"
	CategoryRooftop   Category = "rooftop"
	CategoryPub       Category = "pub"
	CategoryLiveMusic Category = "live_music"
	CategoryOther     Category = "other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryClub, CategoryBar, CategoryLounge, CategoryRooftop, CategoryPub, CategoryLiveMusic, CategoryOther:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
