// internal/email/mailer/application_status.go
package mailer

import (
	"github.com/garasilabs/maganghub/internal/email"
	"github.com/garasilabs/maganghub/internal/model"
)

// StatusTemplateData contains data for the application status template
type StatusTemplateData struct {
	StudentName     string
	InternshipTitle string
	CompanyName     string
	Status          string
}

// SendApplicationStatusEmail notifies a student that a company changed the
// status of one of their applications.
func SendApplicationStatusEmail(s *email.Service, to string, application *model.Application, internship *model.Internship, studentName string) error {
	templateData := StatusTemplateData{
		StudentName:     studentName,
		InternshipTitle: internship.Title,
		CompanyName:     internship.CompanyName,
		Status:          string(application.Status),
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "MagangHub",
		Subject:      "Your application for " + internship.Title + " was updated",
		TemplateName: "application_status",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
