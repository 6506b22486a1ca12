package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"clubhub-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendJoinDecision(ctx context.Context, email, name, clubName string, accepted bool) error {
	subject := fmt.Sprintf("Your application to join %s", clubName)
	body := fmt.Sprintf("Hello %s,\n\nYour application to join %s was rejected.", name, clubName)
	if accepted {
		body = fmt.Sprintf("Hello %s,\n\nYour application to join %s was accepted. Welcome aboard!", name, clubName)
	}
	return s.send(email, name, subject, body)
}

func (s *emailService) SendCreateDecision(ctx context.Context, email, name, clubName string, accepted bool) error {
	subject := fmt.Sprintf("Your request to found %s", clubName)
	body := fmt.Sprintf("Hello %s,\n\nYour request to found the club %s was rejected.", name, clubName)
	if accepted {
		body = fmt.Sprintf("Hello %s,\n\nYour request to found the club %s was accepted. You are now its chief.", name, clubName)
	}
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	// An empty key disables outgoing mail (dev and test deployments).
	if s.apiKey == "" {
		logger.Debug("email disabled, skipping send", "to", to, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
