package services

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendAgentInvitation(email string) error
	SendLeadCreated(notifyEmail string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendAgentInvitation(email string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "You are invited to be an agent")

	body := `
		<h2>You are invited to be an agent</h2>
		<p>You were added as an agent on SimpleCRM. Please login to see your assigned leads.</p>
		<p>Best regards,<br>The SimpleCRM Team</p>
	`
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send agent invitation email: %w", err)
	}
	return nil
}

func (s *emailService) SendLeadCreated(notifyEmail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", notifyEmail)
	m.SetHeader("Subject", "A New Lead has been created")

	body := `
		<h3>A new lead has been created</h3>
		<p>Please check the website for the new lead.</p>
	`
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send lead created email: %w", err)
	}
	return nil
}
