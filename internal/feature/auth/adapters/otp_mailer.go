package adapters

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"expensepro_backend/internal/feature/auth/domain/entity"
	"expensepro_backend/internal/feature/auth/usecase"
	"expensepro_backend/internal/infrastructure/mail"
)

// EmailLogModel records the outcome of every OTP dispatch.
type EmailLogModel struct {
	ID        uint   `gorm:"primaryKey"`
	To        string `gorm:"size:255;not null"`
	Type      string `gorm:"size:16;not null"`
	Success   bool   `gorm:"not null;default:false"`
	Error     string `gorm:"size:512"`
	CreatedAt time.Time
}

// TableName sets the table name for EmailLogModel.
func (EmailLogModel) TableName() string {
	return "email_logs"
}

// otpMailer implements usecase.OTPMailer over the SMTP mailer and logs every
// delivery attempt to the email_logs table.
type otpMailer struct {
	mailer *mail.Mailer
	db     *gorm.DB
}

// Compile-time check that otpMailer implements OTPMailer.
var _ usecase.OTPMailer = (*otpMailer)(nil)

// NewOTPMailer creates a new otpMailer instance.
func NewOTPMailer(mailer *mail.Mailer, db *gorm.DB) *otpMailer {
	return &otpMailer{mailer: mailer, db: db}
}

// SendOTP renders the purpose-specific template, sends it and records the
// outcome. The send error propagates so the request fails on delivery failure.
func (m *otpMailer) SendOTP(ctx context.Context, to, name, code string, purpose entity.OTPPurpose) error {
	var subject, html string
	if purpose == entity.OTPReset {
		subject, html = mail.ResetOTPEmail(name, code)
	} else {
		subject, html = mail.SignupOTPEmail(name, code)
	}

	sendErr := m.mailer.Send(ctx, to, subject, html)

	logRow := EmailLogModel{To: to, Type: string(purpose), Success: sendErr == nil}
	if sendErr != nil {
		logRow.Error = sendErr.Error()
	}
	if err := m.db.WithContext(ctx).Create(&logRow).Error; err != nil {
		// Losing a log row must not mask the delivery outcome.
		slog.Warn("failed to record email log", "error", err, "to", to)
	}

	if sendErr != nil {
		slog.Error("OTP email delivery failed", "error", sendErr, "to", to, "type", purpose)
		return sendErr
	}
	slog.Info("OTP email sent", "to", to, "type", purpose)
	return nil
}
