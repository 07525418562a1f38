// File: /services/email_service.go
package services

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"collateral-api/config"
	"collateral-api/models"
)

// EmailService sends a heads-up to the review inbox when a new application
// lands in the queue. It is best-effort: a down SMTP server never blocks an
// application.
type EmailService struct {
	config *config.Config
	dialer *gomail.Dialer
	logger *zap.Logger
}

func NewEmailService(cfg *config.Config, logger *zap.Logger) *EmailService {
	return &EmailService{
		config: cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		logger: logger,
	}
}

// Enabled reports whether a review inbox is configured.
func (es *EmailService) Enabled() bool {
	return es.config.ReviewInboxEmail != ""
}

func (es *EmailService) NotifyPendingReview(loan *models.Loan) error {
	if !es.Enabled() {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf("%s <%s>", es.config.FromName, es.config.FromEmail))
	m.SetHeader("To", es.config.ReviewInboxEmail)
	m.SetHeader("Subject", fmt.Sprintf("Loan application %s pending review", loan.ID))

	notes := "none"
	if loan.ReviewNotes != nil {
		notes = *loan.ReviewNotes
	}

	body := fmt.Sprintf(`A new loan application is waiting for review.

Application: %s
Applicant:   %s
Amount:      %.2f over %d months at %.2f%% APR
Payment:     %.2f / month
Auto-check:  %s
`,
		loan.ID,
		loan.ApplicantName,
		loan.Amount,
		loan.TermMonths,
		loan.APR*100,
		loan.MonthlyPayment,
		notes,
	)
	m.SetBody("text/plain", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send review notification: %w", err)
	}

	es.logger.Info("review notification sent", zap.String("loan_id", loan.ID))
	return nil
}
