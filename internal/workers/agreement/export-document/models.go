// internal/workers/agreement/export-document/models.go
package exportdocument

import "agreement-workers/internal/models"

type Input struct {
	Document *models.RenderedDocument `json:"document"`
	// TitleContext overrides the page title, typically the property title.
	TitleContext string `json:"titleContext,omitempty"`
}

// Output carries the standalone printable page. Exported is false when the
// document had nothing to print; HTML is empty in that case.
type Output struct {
	Exported bool   `json:"exported"`
	HTML     string `json:"html,omitempty"`
	Title    string `json:"title,omitempty"`
}
