package mailer

import (
	"github.com/ehtasham11/nutritional-AI/pkg/logger"
)

// DevMailer logs confirmation emails instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendConfirmationEmail(toEmail, firstName, confirmURL, token string) error {
	logger.Info("[DEV MAIL] Confirmation Email",
		"to", toEmail,
		"name", firstName,
		"confirm_url", confirmURL,
		"token", token,
	)
	return nil
}
