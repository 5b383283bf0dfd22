// internal/form/wizard_test.go
package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garasilabs/maganghub/internal/form"
)

// completeData fills every checked field so a wizard can walk start to finish.
func completeData() *form.Data {
	return &form.Data{
		FullName:        "Jane Doe",
		StudentIDNumber: "2110512345",
		DateOfBirth:     "2002-05-14",
		PhoneNumber:     "+6281234567890",
		Address:         "Jl. Merdeka 1, Jakarta",

		CVFileName:         "cv.pdf",
		TranscriptFileName: "transcript.pdf",

		GPA: 3.6,

		ReasonForApplying:   "I want hands-on backend experience.",
		InternshipStartDate: "2026-01-05",
		InternshipEndDate:   "2026-06-26",

		DataAuthenticityConfirmation: true,
		DataProcessingConsent:        true,
		ESignature:                   "Jane Doe",
	}
}

func TestWizardAdvancesThroughAllSteps(t *testing.T) {
	w := form.NewWizard(completeData())

	for w.Step() < form.FinalStep {
		errs := w.Next()
		require.Empty(t, errs, "step %s should pass", w.Step())
	}

	assert.Equal(t, form.FinalStep, w.Step())
	assert.Empty(t, w.Submit())
}

func TestWizardStaysOnFailingStep(t *testing.T) {
	data := completeData()
	data.PhoneNumber = ""
	w := form.NewWizard(data)

	errs := w.Next()
	require.Contains(t, errs, "phone_number")
	assert.Equal(t, form.StepPersonalInfo, w.Step())

	// Fixing the field unblocks the same call.
	data.PhoneNumber = "+62812000000"
	assert.Empty(t, w.Next())
	assert.Equal(t, form.StepDocuments, w.Step())
}

func TestWizardStepChecklists(t *testing.T) {
	tests := []struct {
		name   string
		step   form.Step
		mutate func(*form.Data)
		field  string
	}{
		{"missing student id", form.StepPersonalInfo, func(d *form.Data) { d.StudentIDNumber = "" }, "student_id_number"},
		{"malformed optional email", form.StepPersonalInfo, func(d *form.Data) { d.ActiveEmail = "not-an-email" }, "active_email"},
		{"semester out of range", form.StepPersonalInfo, func(d *form.Data) { d.CurrentSemester = 9 }, "current_semester"},
		{"missing cv", form.StepDocuments, func(d *form.Data) { d.CVFileName = "" }, "cv_file_name"},
		{"missing transcript", form.StepDocuments, func(d *form.Data) { d.TranscriptFileName = "" }, "transcript_file_name"},
		{"zero gpa", form.StepAcademic, func(d *form.Data) { d.GPA = 0 }, "gpa"},
		{"gpa above scale", form.StepAcademic, func(d *form.Data) { d.GPA = 4.2 }, "gpa"},
		{"missing reason", form.StepDetails, func(d *form.Data) { d.ReasonForApplying = "" }, "reason_for_applying"},
		{"consent withheld", form.StepConsent, func(d *form.Data) { d.DataProcessingConsent = false }, "data_processing_consent"},
		{"missing signature", form.StepConsent, func(d *form.Data) { d.ESignature = "" }, "e_signature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := completeData()
			tt.mutate(data)

			errs := form.ValidateStep(tt.step, data)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestWizardGPABoundary(t *testing.T) {
	data := completeData()
	data.GPA = 4.0

	assert.Empty(t, form.ValidateStep(form.StepAcademic, data), "a perfect 4.0 is on the scale")
}

func TestWizardPrevIsUnguarded(t *testing.T) {
	data := completeData()
	data.CVFileName = ""
	w := form.NewWizard(data)

	require.Empty(t, w.Next())
	require.Equal(t, form.StepDocuments, w.Step())

	// Going back never validates, and the first step is a floor.
	w.Prev()
	assert.Equal(t, form.StepPersonalInfo, w.Step())
	w.Prev()
	assert.Equal(t, form.StepPersonalInfo, w.Step())
}

func TestWizardSubmitBeforeFinalStep(t *testing.T) {
	w := form.NewWizard(completeData())

	errs := w.Submit()
	assert.Contains(t, errs, "step", "submitting from step one must not succeed")
	assert.Equal(t, form.StepPersonalInfo, w.Step())
}

func TestValidateAllUnionsStepFailures(t *testing.T) {
	data := completeData()
	data.Address = ""
	data.GPA = 0
	data.ESignature = ""

	errs := form.ValidateAll(data)
	assert.Contains(t, errs, "address")
	assert.Contains(t, errs, "gpa")
	assert.Contains(t, errs, "e_signature")

	assert.Nil(t, form.ValidateAll(completeData()))
}
