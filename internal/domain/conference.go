package domain

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors shared across repositories and services.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Status is the advisory registration status of a conference. It is stored
// data, not derived from attendee counts.
type Status string

const (
	StatusOpen    Status = "Open"
	StatusClosed  Status = "Closed"
	StatusSoldOut Status = "Sold Out"
)

// IsValid reports whether s is one of the known status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusSoldOut:
		return true
	}
	return false
}

// CategoryList is the canonical array-of-strings form of a conference's
// categories. Persisted rows and older clients may carry the value as a
// JSON-encoded string instead of a native array; the string⇄array coercion
// happens exactly once, here, at the codec boundary.
type CategoryList []string

// Normalized returns a non-nil copy of the list. Normalizing twice is
// idempotent.
func (c CategoryList) Normalized() CategoryList {
	out := make(CategoryList, len(c))
	copy(out, c)
	return out
}

// Value implements driver.Valuer: categories are stored as JSON text.
func (c CategoryList) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(c.Normalized()))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner. It accepts NULL, JSON array text, and
// doubly-encoded JSON (a JSON string whose contents are the array).
func (c *CategoryList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = CategoryList{}
		return nil
	case []byte:
		return c.decode(v)
	case string:
		return c.decode([]byte(v))
	}
	return fmt.Errorf("cannot scan %T into CategoryList", src)
}

// UnmarshalJSON accepts a JSON array of strings, a JSON-encoded string
// containing such an array, or a bare string naming a single category.
func (c *CategoryList) UnmarshalJSON(data []byte) error {
	return c.decode(data)
}

// MarshalJSON always emits the canonical array form, never a raw string.
func (c CategoryList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(c.Normalized()))
}

func (c *CategoryList) decode(data []byte) error {
	if len(data) == 0 {
		*c = CategoryList{}
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*c = CategoryList(arr)
		if arr == nil {
			*c = CategoryList{}
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			*c = CategoryList(arr)
			if arr == nil {
				*c = CategoryList{}
			}
			return nil
		}
		// A plain string that is not encoded JSON names a single category.
		*c = CategoryList{s}
		return nil
	}
	// Raw text that is neither valid JSON nor a JSON string, e.g. a legacy
	// value written without encoding. Treat it as one category.
	*c = CategoryList{string(data)}
	return nil
}

// Conference represents a conference listing.
// swagger:model Conference
type Conference struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Date             string       `json:"date"`
	Location         string       `json:"location"`
	Price            float64      `json:"price"`
	Category         CategoryList `json:"category"`
	ImageURL         string       `json:"imageUrl,omitempty"`
	Speakers         []*Speaker   `json:"speakers,omitempty"`
	MaxAttendees     int          `json:"maxAttendees"`
	CurrentAttendees int          `json:"currentAttendees"`
	IsFeatured       bool         `json:"isFeatured"`
	Status           Status       `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// NewConference returns a new Conference with the given fields. ID is assigned
// by the catalog service on create when the caller does not supply one.
func NewConference(name, description, date, location string, price float64, category CategoryList, createdAt, updatedAt time.Time) *Conference {
	return &Conference{
		Name:        name,
		Description: description,
		Date:        date,
		Location:    location,
		Price:       price,
		Category:    category.Normalized(),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// ConferenceUpdate carries the full set of editable fields for an admin edit.
// Every field overwrites the stored value; there is no partial update and no
// conflict detection between concurrent editors (last write wins).
type ConferenceUpdate struct {
	Name        string
	Description string
	Date        string
	Location    string
	Price       float64
	Category    CategoryList
	Status      Status
}

// ConferenceRepository defines the interface for conference storage.
type ConferenceRepository interface {
	Create(ctx context.Context, conf *Conference) error
	GetByID(ctx context.Context, id string) (*Conference, error)
	List(ctx context.Context) ([]*Conference, error)
	Update(ctx context.Context, id string, upd ConferenceUpdate) (*Conference, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService defines catalog operations exposed to the HTTP layer.
type CatalogService interface {
	ListConferences(ctx context.Context, spec FilterSpec) ([]*Conference, error)
	// GetConference returns the conference with its speakers expanded.
	GetConference(ctx context.Context, id string) (*Conference, error)
	// CreateConference assigns an id when absent and applies field defaults.
	CreateConference(ctx context.Context, conf *Conference) error
	UpdateConference(ctx context.Context, id string, upd ConferenceUpdate) (*Conference, error)
	DeleteConference(ctx context.Context, id string) error
}
