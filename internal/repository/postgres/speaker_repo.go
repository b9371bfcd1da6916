package postgres

import (
	"context"
	"database/sql"

	"conferencehub/internal/domain"
)

type speakerRepository struct {
	DB *sql.DB
}

// NewSpeakerRepository returns a domain.SpeakerRepository implemented with Postgres.
func NewSpeakerRepository(db *sql.DB) domain.SpeakerRepository {
	return &speakerRepository{DB: db}
}

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	query := `
		INSERT INTO speakers (conference_id, name, title, company, bio, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.ConferenceID, s.Name, s.Title, s.Company, s.Bio, nullString(s.AvatarURL),
	).Scan(&s.ID)
}

func (r *speakerRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Speaker, error) {
	query := `
		SELECT id, conference_id, name, title, company, bio, avatar_url
		FROM speakers
		WHERE conference_id = $1
		ORDER BY name
	`
	rows, err := r.DB.QueryContext(ctx, query, conferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	speakers := make([]*domain.Speaker, 0)
	for rows.Next() {
		s := &domain.Speaker{}
		var avatarNull sql.NullString
		if err := rows.Scan(&s.ID, &s.ConferenceID, &s.Name, &s.Title, &s.Company, &s.Bio, &avatarNull); err != nil {
			return nil, err
		}
		if avatarNull.Valid {
			s.AvatarURL = avatarNull.String
		}
		speakers = append(speakers, s)
	}
	return speakers, rows.Err()
}
