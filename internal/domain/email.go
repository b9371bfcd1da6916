package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RegistrationEmailData holds data for the registration confirmation email.
type RegistrationEmailData struct {
	Email          string
	Name           string
	ConferenceName string
	ConferenceDate string
	Location       string
}

// SubscriptionEmailData holds data for the newsletter subscription confirmation email.
type SubscriptionEmailData struct {
	Email string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationEmailData) error
	SendSubscriptionConfirmation(ctx context.Context, data *SubscriptionEmailData) error
}
