// Package mail sends HTML email over SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the SMTP connection settings.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// LoadConfig loads SMTP configuration from environment variables.
// EMAIL_USER and EMAIL_PASS are required; host and port default to Gmail.
func LoadConfig() (Config, error) {
	cfg := Config{
		Host: os.Getenv("EMAIL_HOST"),
		User: os.Getenv("EMAIL_USER"),
		Pass: os.Getenv("EMAIL_PASS"),
	}
	if cfg.User == "" || cfg.Pass == "" {
		return cfg, fmt.Errorf("EMAIL_USER and EMAIL_PASS must be set")
	}
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	cfg.Port = 587
	if p := os.Getenv("EMAIL_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return cfg, fmt.Errorf("invalid EMAIL_PORT %q: %w", p, err)
		}
		cfg.Port = port
	}
	cfg.From = fmt.Sprintf("%q <%s>", "ExpensePro", cfg.User)
	return cfg, nil
}

// Mailer sends HTML mail through a single SMTP account.
type Mailer struct {
	cfg Config
}

// NewMailer creates a new Mailer instance.
func NewMailer(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Send delivers one HTML message. The connection upgrades to TLS via STARTTLS
// when the server offers it and authenticates when credentials are configured.
func (m *Mailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	var sb strings.Builder
	sb.WriteString("From: " + m.cfg.From + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(htmlBody)

	dialer := &net.Dialer{Timeout: 5 * time.Second}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial failed: %w", err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
			return fmt.Errorf("starttls failed: %w", err)
		}
	}
	if m.cfg.User != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
			if err := c.Auth(auth); err != nil {
				return fmt.Errorf("smtp auth failed: %w", err)
			}
		}
	}

	if err := c.Mail(m.cfg.User); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(sb.String())); err != nil {
		return err
	}
	return w.Close()
}
