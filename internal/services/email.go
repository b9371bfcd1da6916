package services

import (
	"context"
	"fmt"
	"log"

	"conferencehub/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendRegistrationConfirmation sends the registration confirmation email using the "registration" template.
func (s *emailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationEmailData) error {
	if data == nil {
		return fmt.Errorf("registration email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("registration", data)
	if err != nil {
		return fmt.Errorf("failed to render registration template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send registration email: %w", err)
	}
	log.Printf("[EMAIL] Registration confirmation sent to %s", data.Email)
	return nil
}

// SendSubscriptionConfirmation sends the newsletter signup confirmation using the "subscription" template.
func (s *emailService) SendSubscriptionConfirmation(ctx context.Context, data *domain.SubscriptionEmailData) error {
	if data == nil {
		return fmt.Errorf("subscription email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("subscription", data)
	if err != nil {
		return fmt.Errorf("failed to render subscription template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send subscription email: %w", err)
	}
	log.Printf("[EMAIL] Subscription confirmation sent to %s", data.Email)
	return nil
}
