package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"
)

// Config SMTP settings
type Config struct {
	Host     string `koanf:"host"`     // e.g. smtp.gmail.com
	Port     int    `koanf:"port"`     // 587 (STARTTLS) or 25
	Username string `koanf:"username"` // sender account
	Password string `koanf:"password"` // password or app token
	UseTLS   bool   `koanf:"tls"`
}

// Message outgoing mail
type Message struct {
	From        string // e.g. "YaMDb <noreply@yamdb.local>"
	To          []string
	Subject     string
	Body        string
	ContentType string // defaults to text/plain
}

// Client SMTP client
type Client struct {
	config *Config
}

func NewClient(config *Config) *Client {
	if config.Port == 0 {
		config.Port = 587
	}
	return &Client{config: config}
}

// Send delivers msg through the configured SMTP server.
func (c *Client) Send(msg *Message) error {
	raw, err := buildMessage(msg)
	if err != nil {
		return err
	}

	recipients := msg.To

	auth := smtp.PlainAuth("", c.config.Username, c.config.Password, c.config.Host)
	addr := fmt.Sprintf("%s:%d", c.config.Host, c.config.Port)

	if c.config.UseTLS || c.config.Port == 587 {
		return c.sendWithTLS(addr, auth, msg.From, recipients, raw)
	}

	return smtp.SendMail(addr, auth, msg.From, recipients, raw)
}

// buildMessage renders headers and body in RFC 5322 form.
func buildMessage(msg *Message) ([]byte, error) {
	if msg.From == "" {
		return nil, fmt.Errorf("sender is required")
	}
	if len(msg.To) == 0 {
		return nil, fmt.Errorf("at least one recipient is required")
	}
	if msg.Subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	if msg.ContentType == "" {
		msg.ContentType = "text/plain; charset=UTF-8"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", msg.ContentType)
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return []byte(b.String()), nil
}

func (c *Client) sendWithTLS(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer client.Close()

	if err = client.StartTLS(&tls.Config{ServerName: c.config.Host}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err = client.Mail(from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("smtp rcpt %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err = w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}

	return client.Quit()
}

func (c *Client) SendHTML(from string, to string, subject string, htmlBody string) error {
	return c.Send(&Message{
		From:        from,
		To:          []string{to},
		Subject:     subject,
		Body:        htmlBody,
		ContentType: "text/html; charset=UTF-8",
	})
}
