package postgres

import (
	"context"
	"database/sql"

	"conferencehub/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (id, conference_id, name, email, company, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	// company is NOT NULL with an empty-string default, so the optional
	// field binds as a plain string rather than a nullable one.
	_, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.ConferenceID, reg.Name, reg.Email, reg.Company, reg.RegisteredAt,
	)
	return err
}

func (r *registrationRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Registration, error) {
	query := `
		SELECT id, conference_id, name, email, company, registered_at
		FROM registrations
		WHERE conference_id = $1
		ORDER BY registered_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, conferenceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var regs []*domain.Registration
	for rows.Next() {
		reg := &domain.Registration{}
		var companyNull sql.NullString
		if err := rows.Scan(&reg.ID, &reg.ConferenceID, &reg.Name, &reg.Email, &companyNull, &reg.RegisteredAt); err != nil {
			return nil, err
		}
		if companyNull.Valid {
			reg.Company = companyNull.String
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if regs == nil {
		regs = []*domain.Registration{}
	}
	return regs, nil
}
