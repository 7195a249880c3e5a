package mailer

// Service sends the confirmation email for a freshly registered account.
// The display name is the registrant's first name; the confirmation URL
// already embeds the token, which is also passed separately for templates
// that show it as a code.
type Service interface {
	SendConfirmationEmail(toEmail, firstName, confirmURL, token string) error
}
