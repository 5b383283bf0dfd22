// internal/form/wizard.go
package form

import (
	"fmt"
)

// Step identifies one page of the five-step application form.
type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepDocuments
	StepAcademic
	StepDetails
	StepConsent

	FirstStep = StepPersonalInfo
	FinalStep = StepConsent
)

// Valid reports whether s is one of the five wizard steps.
func (s Step) Valid() bool { return s >= FirstStep && s <= FinalStep }

func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "personal information"
	case StepDocuments:
		return "supporting documents"
	case StepAcademic:
		return "academic record and skills"
	case StepDetails:
		return "application details"
	case StepConsent:
		return "verification and consent"
	}
	return fmt.Sprintf("step %d", int(s))
}

// Wizard walks the application form one step at a time. Advancing runs the
// current step's checklist and stays put on failure; going backward is always
// allowed. Submission is only possible from the final step and re-runs that
// step's checklist.
type Wizard struct {
	step Step
	data *Data
}

func NewWizard(data *Data) *Wizard {
	return &Wizard{step: FirstStep, data: data}
}

// Step returns the step the wizard currently sits on.
func (w *Wizard) Step() Step { return w.step }

// Data returns the form data the wizard validates against. The caller keeps
// mutating it between steps; the wizard only reads it.
func (w *Wizard) Data() *Data { return w.data }

// Next validates the current step. On success the wizard advances (unless it
// already sits on the final step) and returns nil; on failure it stays on the
// current step and returns the field errors.
func (w *Wizard) Next() Errors {
	if errs := ValidateStep(w.step, w.data); len(errs) > 0 {
		return errs
	}
	if w.step < FinalStep {
		w.step++
	}
	return nil
}

// Prev moves one step back. It is unguarded and a no-op on the first step.
func (w *Wizard) Prev() {
	if w.step > FirstStep {
		w.step--
	}
}

// Submit re-runs the final step's checklist and reports whether the form may
// be handed to the store. Calling it before reaching the final step always
// fails, naming the step still pending.
func (w *Wizard) Submit() Errors {
	if w.step != FinalStep {
		return Errors{"step": fmt.Sprintf("cannot submit from %s", w.step)}
	}
	return ValidateStep(FinalStep, w.data)
}
