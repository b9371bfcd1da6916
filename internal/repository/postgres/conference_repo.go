package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"conferencehub/internal/domain"
)

type conferenceRepository struct {
	DB *sql.DB
}

func NewConferenceRepository(db *sql.DB) domain.ConferenceRepository {
	return &conferenceRepository{
		DB: db,
	}
}

const conferenceColumns = `id, name, description, date, location, price, category, image_url, max_attendees, current_attendees, is_featured, status, created_at, updated_at`

func (r *conferenceRepository) Create(ctx context.Context, c *domain.Conference) error {
	query := `
		INSERT INTO conferences (id, name, description, date, location, price, category, image_url, max_attendees, current_attendees, is_featured, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.DB.ExecContext(ctx, query,
		c.ID, c.Name, c.Description, c.Date, c.Location, c.Price, c.Category,
		nullString(c.ImageURL), c.MaxAttendees, c.CurrentAttendees, c.IsFeatured,
		string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return fmt.Errorf("conference id already exists: %w", domain.ErrInvalidInput)
		}
		return err
	}
	return nil
}

func (r *conferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	query := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		WHERE id = $1
	`
	c, err := scanConference(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) List(ctx context.Context) ([]*domain.Conference, error) {
	query := `
		SELECT ` + conferenceColumns + `
		FROM conferences
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	confs := make([]*domain.Conference, 0)
	for rows.Next() {
		c, err := scanConference(rows)
		if err != nil {
			return nil, err
		}
		confs = append(confs, c)
	}
	return confs, rows.Err()
}

func (r *conferenceRepository) Update(ctx context.Context, id string, upd domain.ConferenceUpdate) (*domain.Conference, error) {
	query := `
		UPDATE conferences
		SET name = $1, description = $2, date = $3, location = $4, price = $5, category = $6, status = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING ` + conferenceColumns + `
	`
	c, err := scanConference(r.DB.QueryRowContext(ctx, query,
		upd.Name, upd.Description, upd.Date, upd.Location, upd.Price,
		upd.Category, string(upd.Status), id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *conferenceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM conferences WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanConference(row rowScanner) (*domain.Conference, error) {
	c := &domain.Conference{}
	var imageNull sql.NullString
	err := row.Scan(
		&c.ID, &c.Name, &c.Description, &c.Date, &c.Location, &c.Price,
		&c.Category, &imageNull, &c.MaxAttendees, &c.CurrentAttendees,
		&c.IsFeatured, (*string)(&c.Status), &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if imageNull.Valid {
		c.ImageURL = imageNull.String
	}
	return c, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
