// internal/workers/data-access/fetch-property/models.go
package fetchproperty

import "agreement-workers/internal/models"

type Input struct {
	PropertyID string `json:"propertyId"`
}

// Output carries the property snapshot the rest of the process renders from.
type Output struct {
	Property *models.Property `json:"property"`
	Family   string           `json:"family"`
}
