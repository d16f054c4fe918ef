package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// Service sends WFH application lifecycle notifications.
type Service interface {
	SendApplicationSubmitted(to, employeeName, startDate, endDate string) error
	SendApplicationDecided(to, employeeName, status, remarks, startDate, endDate string) error
}

type serviceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewService creates a new email service instance
func NewService(cfg config.SMTPConfig) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &serviceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type submittedEmailData struct {
	EmployeeName string
	StartDate    string
	EndDate      string
}

// SendApplicationSubmitted notifies the reporting manager that a subordinate
// filed a new WFH application.
func (s *serviceImpl) SendApplicationSubmitted(to, employeeName, startDate, endDate string) error {
	data := submittedEmailData{
		EmployeeName: employeeName,
		StartDate:    startDate,
		EndDate:      endDate,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "application_submitted.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("New WFH application from %s", employeeName), body.String())
}

type decidedEmailData struct {
	EmployeeName string
	Status       string
	Remarks      string
	StartDate    string
	EndDate      string
}

// SendApplicationDecided notifies the employee of an approval, rejection or
// withdrawal of their application.
func (s *serviceImpl) SendApplicationDecided(to, employeeName, status, remarks, startDate, endDate string) error {
	data := decidedEmailData{
		EmployeeName: employeeName,
		Status:       status,
		Remarks:      remarks,
		StartDate:    startDate,
		EndDate:      endDate,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "application_decided.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your WFH application was %s", status), body.String())
}

func (s *serviceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
