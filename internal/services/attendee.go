package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"conferencehub/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

type attendeeService struct {
	conferenceRepo   domain.ConferenceRepository
	registrationRepo domain.RegistrationRepository
	ledger           domain.Ledger
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewAttendeeService creates an AttendeeService with the given collaborators.
func NewAttendeeService(
	conferenceRepo domain.ConferenceRepository,
	registrationRepo domain.RegistrationRepository,
	ledger domain.Ledger,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.AttendeeService {
	return &attendeeService{
		conferenceRepo:   conferenceRepo,
		registrationRepo: registrationRepo,
		ledger:           ledger,
		emailService:     emailService,
		logger:           logger,
	}
}

func (s *attendeeService) Register(ctx context.Context, conferenceID, name, email, company string) (*domain.Registration, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required: %w", domain.ErrInvalidInput)
	}
	if !emailRegex.MatchString(email) {
		return nil, fmt.Errorf("invalid email %q: %w", email, domain.ErrInvalidInput)
	}

	// Ensure the conference exists. Capacity is intentionally not checked:
	// attendee counts are display data, not inventory.
	conf, err := s.conferenceRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}

	reg := domain.NewRegistration(conferenceID, name, email, strings.TrimSpace(company), time.Now())
	reg.ID = uuid.NewString()
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if err := s.ledger.MarkRegistered(conferenceID); err != nil {
		s.logger.Warn("mark registered in ledger failed", "conference_id", conferenceID, "err", err)
	}

	// Confirmation email is best-effort; a mailer failure never fails the
	// registration.
	data := &domain.RegistrationEmailData{
		Email:          email,
		Name:           name,
		ConferenceName: conf.Name,
		ConferenceDate: conf.Date,
		Location:       conf.Location,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.Warn("registration confirmation email failed", "conference_id", conferenceID, "err", err)
	}

	return reg, nil
}

func (s *attendeeService) ToggleFavorite(id string) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("conference id is required: %w", domain.ErrInvalidInput)
	}
	return s.ledger.ToggleFavorite(id)
}

func (s *attendeeService) Favorites() []string {
	return s.ledger.Favorites()
}

func (s *attendeeService) IsRegistered(id string) bool {
	return s.ledger.IsRegistered(id)
}

func (s *attendeeService) Subscribe(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email %q: %w", email, domain.ErrInvalidInput)
	}

	added, err := s.ledger.AddSubscription(email)
	if err != nil {
		return fmt.Errorf("record subscription: %w", err)
	}
	if !added {
		// Already on the list; nothing more to do.
		return nil
	}

	if err := s.emailService.SendSubscriptionConfirmation(ctx, &domain.SubscriptionEmailData{Email: email}); err != nil {
		s.logger.Warn("subscription confirmation email failed", "email", email, "err", err)
	}
	return nil
}
