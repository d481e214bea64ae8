package service

import (
	"context"
	"fmt"
	"strings"

	"vcg-backend/internal/domain"
	"vcg-backend/internal/logger"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host       string
	port       int
	username   string
	password   string
	from       string
	adminEmail string
}

func NewEmailService(host string, port int, username, password, from, adminEmail string) EmailService {
	return &emailService{
		host:       host,
		port:       port,
		username:   username,
		password:   password,
		from:       from,
		adminEmail: adminEmail,
	}
}

func (s *emailService) SendApplicationConfirmation(ctx context.Context, to, fullName, position string) error {
	body := fmt.Sprintf("Hello %s,\n\nThank you for applying for the position: %s.\n\nWe have received your application and will get back to you once it has been reviewed.\n\nBest regards,\nVolt Consulting Group", fullName, position)
	return s.send(to, fmt.Sprintf("Application received - %s", position), body)
}

func (s *emailService) SendNewApplicationNotice(ctx context.Context, fullName, position string) error {
	if s.adminEmail == "" {
		return nil
	}
	body := fmt.Sprintf("A new application has been submitted.\n\nApplicant: %s\nPosition: %s\n\nOpen the admin dashboard to review it.", fullName, position)
	return s.send(s.adminEmail, "New application received", body)
}

func (s *emailService) SendPendingDigest(ctx context.Context, pending []domain.Application) error {
	if s.adminEmail == "" || len(pending) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "There are %d applications waiting for review:\n\n", len(pending))
	for _, a := range pending {
		fmt.Fprintf(&b, "- %s (%s), submitted %s\n", a.FullName, a.Position, a.AppliedAt)
	}
	b.WriteString("\nOpen the admin dashboard to review them.")

	return s.send(s.adminEmail, fmt.Sprintf("%d pending applications", len(pending)), b.String())
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)

	logger.ExternalServiceCall("smtp", "send", "to", to, "subject", subject)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}
