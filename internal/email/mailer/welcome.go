// internal/email/mailer/welcome.go
package mailer

import "github.com/garasilabs/maganghub/internal/email"

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	Name     string
	Role     string
	LoginURL string
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(s *email.Service, to, name, role string) error {
	templateData := WelcomeTemplateData{
		Name:     name,
		Role:     role,
		LoginURL: s.BaseURL() + "/login",
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "MagangHub",
		Subject:      "Welcome to MagangHub!",
		TemplateName: "welcome",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
