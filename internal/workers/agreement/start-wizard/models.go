// internal/workers/agreement/start-wizard/models.go
package startwizard

import "time"

type Input struct {
	PropertyID  string `json:"propertyId"`
	ListingType string `json:"listingType"`
}

// Output mirrors the freshly created session so downstream tasks can
// reference it without a store round trip.
type Output struct {
	SessionID       string    `json:"sessionId"`
	Family          string    `json:"family"`
	Step            int       `json:"step"`
	StepName        string    `json:"stepName"`
	ReferenceNumber string    `json:"referenceNumber"`
	AnchorDate      time.Time `json:"anchorDate"`
}
