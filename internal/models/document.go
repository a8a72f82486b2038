// internal/models/document.go
package models

import "time"

// Agreement families.
const (
	FamilyRental   = "rental"
	FamilyPurchase = "purchase"
)

// RenderedDocument is the fully assembled legal document. It is recomputed on
// every render from the property snapshot and wizard session, and is never
// persisted or mutated in place.
type RenderedDocument struct {
	Family          string           `json:"family"`
	TemplateID      string           `json:"templateId"`
	Title           string           `json:"title"`
	Subtitle        string           `json:"subtitle,omitempty"`
	ReferenceNumber string           `json:"referenceNumber"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	Sections        []Section        `json:"sections"`
	Signatures      []SignatureBlock `json:"signatures"`
	Footnote        string           `json:"footnote,omitempty"`
}

// Section is one named block of the document: a run of paragraphs, a table of
// label/value rows, or a numbered clause list. A section may carry any mix.
type Section struct {
	Key        string      `json:"key"`
	Heading    string      `json:"heading"`
	Paragraphs []string    `json:"paragraphs,omitempty"`
	Rows       []TableRow  `json:"rows,omitempty"`
	Clauses    []string    `json:"clauses,omitempty"`
}

type TableRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
	// Emphasis marks totals and other rows the stylesheet renders bold.
	Emphasis bool `json:"emphasis,omitempty"`
}

type SignatureBlock struct {
	Role string `json:"role"`
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// IsEmpty reports whether there is anything to export.
func (d *RenderedDocument) IsEmpty() bool {
	return d == nil || len(d.Sections) == 0
}

// SectionKeys returns the section keys in render order.
func (d *RenderedDocument) SectionKeys() []string {
	keys := make([]string, len(d.Sections))
	for i, s := range d.Sections {
		keys[i] = s.Key
	}
	return keys
}
