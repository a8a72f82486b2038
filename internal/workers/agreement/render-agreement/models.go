// internal/workers/agreement/render-agreement/models.go
package renderagreement

import (
	"time"

	"agreement-workers/internal/models"
)

type Input struct {
	Family          string           `json:"family"`
	TemplateID      string           `json:"templateId"`
	PlanID          string           `json:"planId,omitempty"`
	DurationMonths  int              `json:"durationMonths,omitempty"`
	ReferenceNumber string           `json:"referenceNumber"`
	AnchorDate      time.Time        `json:"anchorDate"`
	Property        *models.Property `json:"property"`
	Party           *models.Party    `json:"party,omitempty"`
}

type Output struct {
	Document *models.RenderedDocument `json:"document"`
}
