package domain

import (
	"context"
	"time"
)

// Registration represents a submitted registration for a conference. There is
// no cancellation path, and creating a registration does not adjust the
// conference's attendee counts; those are display data only.
// swagger:model Registration
type Registration struct {
	ID           string    `json:"id"`
	ConferenceID string    `json:"conferenceId"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Company      string    `json:"company,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// NewRegistration returns a new Registration. ID is set by the attendee service on create.
func NewRegistration(conferenceID, name, email, company string, registeredAt time.Time) *Registration {
	return &Registration{
		ConferenceID: conferenceID,
		Name:         name,
		Email:        email,
		Company:      company,
		RegisteredAt: registeredAt,
	}
}

// RegistrationRepository defines storage for registrations.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Registration, error)
}

// Ledger is the per-profile favorite/registered/subscription state, persisted
// independently of the catalog. Implementations fail soft: a missing or
// corrupt backing store reads as empty sets.
type Ledger interface {
	ToggleFavorite(id string) (favorite bool, err error)
	IsFavorite(id string) bool
	Favorites() []string
	MarkRegistered(id string) error
	IsRegistered(id string) bool
	AddSubscription(email string) (added bool, err error)
	Subscriptions() []string
}

// AttendeeService defines attendee-facing operations: registration, favorites,
// and newsletter signup.
type AttendeeService interface {
	// Register records a registration for the conference and marks it
	// registered in the ledger. It does not enforce capacity.
	Register(ctx context.Context, conferenceID, name, email, company string) (*Registration, error)
	ToggleFavorite(id string) (favorite bool, err error)
	Favorites() []string
	IsRegistered(id string) bool
	Subscribe(ctx context.Context, email string) error
}
