package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/config"
)

// Mailer wraps SMTP configuration for sending emails with PDF attachments.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// Configured reports whether SMTP credentials are present. An unconfigured
// mailer silently skips sends so the closing flow works without SMTP.
func (m *Mailer) Configured() bool { return m.host != "" }

// SendReport mails the closing report with the PDF attached.
func (m *Mailer) SendReport(to, subject, body, pdfPath string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: attach PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
