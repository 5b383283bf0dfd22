// internal/form/data.go
package form

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Data is the flat bag of attributes the application form collects across
// its five steps. Documents are carried as captured file names only.
type Data struct {
	// Step 1: personal information
	FullName        string `json:"full_name"`
	StudentIDNumber string `json:"student_id_number" validate:"required"`
	University      string `json:"university"`
	Major           string `json:"major"`
	ActiveEmail     string `json:"active_email" validate:"omitempty,email"`
	CurrentSemester int    `json:"current_semester" validate:"omitempty,min=1,max=8"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"date_of_birth" validate:"required"`
	PhoneNumber     string `json:"phone_number" validate:"required"`
	Address         string `json:"address" validate:"required"`

	// Step 2: supporting documents
	ProfilePictureFileName       string `json:"profile_picture_file_name"`
	CVFileName                   string `json:"cv_file_name" validate:"required"`
	TranscriptFileName           string `json:"transcript_file_name" validate:"required"`
	RecommendationLetterFileName string `json:"recommendation_letter_file_name"`
	PortfolioFileNameOrLink      string `json:"portfolio_file_name_or_link"`
	CertificatesFileName         string `json:"certificates_file_name"`

	// Step 3: academic record and skills
	GPA                      float64  `json:"gpa" validate:"gt=0,lte=4"`
	MainSkills               []string `json:"main_skills"`
	SoftwareTools            []string `json:"software_tools"`
	Languages                []string `json:"languages"`
	OrganizationalExperience string   `json:"organizational_experience"`

	// Step 4: application details
	ReasonForApplying   string `json:"reason_for_applying" validate:"required"`
	InternshipStartDate string `json:"internship_start_date" validate:"required"`
	InternshipEndDate   string `json:"internship_end_date" validate:"required"`
	PreferredWorkType   string `json:"preferred_work_type"`

	// Step 5: verification and consent
	DataAuthenticityConfirmation bool   `json:"data_authenticity_confirmation" validate:"eq=true"`
	DataProcessingConsent        bool   `json:"data_processing_consent" validate:"eq=true"`
	ESignature                   string `json:"e_signature" validate:"required"`
}

// Errors maps a field's json name to a human-readable message.
type Errors map[string]string

// stepFields lists which struct fields each step's checklist covers.
var stepFields = map[Step][]string{
	StepPersonalInfo: {"StudentIDNumber", "DateOfBirth", "PhoneNumber", "Address", "ActiveEmail", "CurrentSemester"},
	StepDocuments:    {"CVFileName", "TranscriptFileName"},
	StepAcademic:     {"GPA"},
	StepDetails:      {"ReasonForApplying", "InternshipStartDate", "InternshipEndDate"},
	StepConsent:      {"DataAuthenticityConfirmation", "DataProcessingConsent", "ESignature"},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json name so errors line up with the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStep runs one step's checklist and returns the failing fields, or
// an empty map when the step passes.
func ValidateStep(step Step, data *Data) Errors {
	fields, ok := stepFields[step]
	if !ok {
		return Errors{"step": fmt.Sprintf("unknown wizard step %d", int(step))}
	}
	return collect(validate.StructPartial(data, fields...))
}

// ValidateAll runs every step's checklist in order and returns the union of
// failures. Used by the store so a submission can never bypass the wizard.
func ValidateAll(data *Data) Errors {
	errs := Errors{}
	for step := FirstStep; step <= FinalStep; step++ {
		for field, msg := range ValidateStep(step, data) {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func collect(err error) Errors {
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{"form": err.Error()}
	}

	errs := make(Errors, len(verrs))
	for _, fe := range verrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "eq":
		return "must be accepted"
	case "gt", "lte":
		return "must be between 0 and 4"
	case "min", "max":
		return "is out of range"
	}
	return "is invalid"
}
