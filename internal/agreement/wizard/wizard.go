// internal/agreement/wizard/wizard.go

// Package wizard models the three-step agreement flow as a plain data
// structure with transition functions, independent of any UI or transport.
// A Session is created once per open wizard; its reference number and anchor
// date are fixed at construction so a document previewed minutes later is
// still internally date-consistent.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"agreement-workers/internal/models"
)

type Step int

const (
	StepTemplateSelection Step = 1
	StepPlanSelection     Step = 2
	StepPreview           Step = 3
)

func (s Step) String() string {
	switch s {
	case StepTemplateSelection:
		return "template-selection"
	case StepPlanSelection:
		return "plan-selection"
	case StepPreview:
		return "preview"
	}
	return fmt.Sprintf("step-%d", int(s))
}

var (
	// ErrSelectionIncomplete blocks Next() until the current step's
	// selection is made. The hosting UI renders it as a disabled control.
	ErrSelectionIncomplete = errors.New("SELECTION_INCOMPLETE")
	// ErrInvalidAction rejects a selection that does not belong to the
	// current step or family.
	ErrInvalidAction = errors.New("INVALID_ACTION")
)

// Session is one wizard instance. Sessions are independent: two open wizards
// for different properties share nothing.
type Session struct {
	ID              string    `json:"id"`
	Family          string    `json:"family"`
	PropertyID      string    `json:"propertyId"`
	Step            Step      `json:"step"`
	TemplateID      string    `json:"templateId,omitempty"`
	PlanID          string    `json:"planId,omitempty"`
	DurationMonths  int       `json:"durationMonths,omitempty"`
	ReferenceNumber string    `json:"referenceNumber"`
	AnchorDate      time.Time `json:"anchorDate"`
	CreatedAt       time.Time `json:"createdAt"`
}

// New starts a session at the template-selection step. The reference number
// is an 8-digit numeric string derived from the creation time; it is
// generated here and never again.
func New(id, family, propertyID string, now time.Time) *Session {
	return &Session{
		ID:              id,
		Family:          family,
		PropertyID:      propertyID,
		Step:            StepTemplateSelection,
		ReferenceNumber: referenceNumber(now),
		AnchorDate:      now,
		CreatedAt:       now,
	}
}

func referenceNumber(now time.Time) string {
	return fmt.Sprintf("%08d", now.UnixNano()%100_000_000)
}

// SelectTemplate records the template choice. Valid only on the template
// step, including after navigating back to it.
func (s *Session) SelectTemplate(templateID string) error {
	if s.Step != StepTemplateSelection {
		return fmt.Errorf("%w: select-template at %s", ErrInvalidAction, s.Step)
	}
	s.TemplateID = templateID
	return nil
}

// SelectPlan records the purchase payment plan choice.
func (s *Session) SelectPlan(planID string) error {
	if s.Step != StepPlanSelection || s.Family != models.FamilyPurchase {
		return fmt.Errorf("%w: select-plan at %s for %s", ErrInvalidAction, s.Step, s.Family)
	}
	s.PlanID = planID
	return nil
}

// SelectDuration records the rental term choice.
func (s *Session) SelectDuration(months int) error {
	if s.Step != StepPlanSelection || s.Family == models.FamilyPurchase {
		return fmt.Errorf("%w: select-duration at %s for %s", ErrInvalidAction, s.Step, s.Family)
	}
	if months <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidAction)
	}
	s.DurationMonths = months
	return nil
}

// Next advances one step, gated on the current step's selection.
func (s *Session) Next() error {
	switch s.Step {
	case StepTemplateSelection:
		if s.TemplateID == "" {
			return fmt.Errorf("%w: no template selected", ErrSelectionIncomplete)
		}
		s.Step = StepPlanSelection
	case StepPlanSelection:
		if !s.planSelected() {
			return fmt.Errorf("%w: no plan selected", ErrSelectionIncomplete)
		}
		s.Step = StepPreview
	case StepPreview:
		return fmt.Errorf("%w: already at preview", ErrInvalidAction)
	}
	return nil
}

// Back moves one step towards template selection. Selections are preserved,
// so re-entering a step offers the previous choice for correction. At the
// first step it is a no-op.
func (s *Session) Back() {
	if s.Step > StepTemplateSelection {
		s.Step--
	}
}

func (s *Session) planSelected() bool {
	if s.Family == models.FamilyPurchase {
		return s.PlanID != ""
	}
	return s.DurationMonths > 0
}

// Complete reports whether the session has reached preview with all
// selections in place.
func (s *Session) Complete() bool {
	return s.Step == StepPreview && s.TemplateID != "" && s.planSelected()
}
