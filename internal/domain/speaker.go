package domain

import "context"

// Speaker represents a speaker at a conference. Speakers are owned by exactly
// one conference and have no independent lifecycle.
// swagger:model Speaker
type Speaker struct {
	ID           string `json:"id"`
	ConferenceID string `json:"conferenceId"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Bio          string `json:"bio"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}

// NewSpeaker returns a new Speaker with the given fields. ID is typically set by the repository on create.
func NewSpeaker(conferenceID, name, title, company, bio, avatarURL string) *Speaker {
	return &Speaker{
		ConferenceID: conferenceID,
		Name:         name,
		Title:        title,
		Company:      company,
		Bio:          bio,
		AvatarURL:    avatarURL,
	}
}

// SpeakerRepository defines storage for conference speakers.
type SpeakerRepository interface {
	Create(ctx context.Context, speaker *Speaker) error
	ListByConferenceID(ctx context.Context, conferenceID string) ([]*Speaker, error)
}
