package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// SMTPMailer sends plain-text email through an authenticated SMTP relay.
type SMTPMailer struct {
	Config *SMTPConfig
}

func NewSMTPMailer(config *SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		Config: config,
	}
}

// SendMail handles the actual SMTP handshake and delivery
func (m *SMTPMailer) SendMail(to string, subject string, body string) error {
	smtpAddr := fmt.Sprintf("%s:%d", m.Config.Host, m.Config.Port)

	// Constructing headers according to RFC 822 standards
	// Note the use of \r\n (Carriage Return + Line Feed)
	headers := []string{
		fmt.Sprintf("From: %s", m.Config.User),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"", // This empty string creates the necessary blank line between headers and body
		body,
	}

	message := strings.Join(headers, "\r\n")

	auth := smtp.PlainAuth("", m.Config.User, m.Config.Password, m.Config.Host)

	return smtp.SendMail(smtpAddr, auth, m.Config.User, []string{to}, []byte(message))
}
