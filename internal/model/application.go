// internal/model/application.go
package model

import "time"

type ApplicationStatus string

const (
	StatusApplied  ApplicationStatus = "Applied"
	StatusAccepted ApplicationStatus = "Accepted"
	StatusRejected ApplicationStatus = "Rejected"
)

// Valid reports whether s is a known application status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Application is a student's submission against one internship posting.
// Uploaded documents are represented by their captured file names only; no
// file bytes are retained.
type Application struct {
	ID              int64             `json:"id"`
	InternshipID    int64             `json:"internship_id"`
	StudentID       int64             `json:"student_id"`
	Status          ApplicationStatus `json:"status"`
	ApplicationDate time.Time         `json:"application_date"`

	// Step 1: personal information
	FullName        string `json:"full_name"`
	StudentIDNumber string `json:"student_id_number"`
	University      string `json:"university"`
	Major           string `json:"major"`
	ActiveEmail     string `json:"active_email"`
	CurrentSemester int    `json:"current_semester"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"date_of_birth"`
	PhoneNumber     string `json:"phone_number"`
	Address         string `json:"address"`

	// Step 2: supporting documents (file names only)
	ProfilePictureFileName       string `json:"profile_picture_file_name,omitempty"`
	CVFileName                   string `json:"cv_file_name"`
	TranscriptFileName           string `json:"transcript_file_name"`
	RecommendationLetterFileName string `json:"recommendation_letter_file_name,omitempty"`
	PortfolioFileNameOrLink      string `json:"portfolio_file_name_or_link,omitempty"`
	CertificatesFileName         string `json:"certificates_file_name,omitempty"`

	// Step 3: academic record and skills
	GPA                      float64  `json:"gpa"`
	MainSkills               []string `json:"main_skills"`
	SoftwareTools            []string `json:"software_tools"`
	Languages                []string `json:"languages"`
	OrganizationalExperience string   `json:"organizational_experience,omitempty"`

	// Step 4: application details
	ReasonForApplying   string `json:"reason_for_applying"`
	InternshipStartDate string `json:"internship_start_date"`
	InternshipEndDate   string `json:"internship_end_date"`
	PreferredWorkType   string `json:"preferred_work_type"`

	// Step 5: verification and consent
	DataAuthenticityConfirmation bool   `json:"data_authenticity_confirmation"`
	DataProcessingConsent        bool   `json:"data_processing_consent"`
	ESignature                   string `json:"e_signature"`
}
