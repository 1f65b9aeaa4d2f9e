package venue

import (
	"strings"

	"github.com/google/uuid"
)

// Venue is the public profile of a partner. Its id is the owning partner user id.
type Venue struct {
	id          uuid.UUID
	name        Name
	description string
	address     string
	city        string
	location    Location
	category    Category
	imageURL    *string
}

type Params struct {
	Name        string
	Description string
	Address     string
	City        string
	Latitude    float64
	Longitude   float64
	Category    string
}

func NewVenue(partnerID uuid.UUID, p Params) (*Venue, error) {
	v := &Venue{id: partnerID}
	if err := v.apply(p); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Venue) UpdateProfile(p Params) error {
	return v.apply(p)
}

func (v *Venue) apply(p Params) error {
	name, err := NewName(p.Name)
	if err != nil {
		return err
	}
	loc, err := NewLocation(p.Latitude, p.Longitude)
	if err != nil {
		return err
	}
	category, err := NewCategory(p.Category)
	if err != nil {
		return err
	}

	v.name = name
	v.description = strings.TrimSpace(p.Description)
	v.address = strings.TrimSpace(p.Address)
	v.city = strings.TrimSpace(p.City)
	v.location = loc
	v.category = category
	return nil
}

func (v *Venue) SetImageURL(url string) { v.imageURL = &url }

func (v *Venue) ID() uuid.UUID       { return v.id }
func (v *Venue) Name() Name          { return v.name }
func (v *Venue) Description() string { return v.description }
func (v *Venue) Address() string     { return v.address }
func (v *Venue) City() string        { return v.city }
func (v *Venue) Location() Location  { return v.location }
func (v *Venue) Category() Category  { return v.category }
func (v *Venue) ImageURL() *string   { return v.imageURL }
