// internal/agreement/render/renderer.go

// Package render assembles agreement documents from a property snapshot and
// the wizard's selections. Rendering is a pure function of its input: it
// never errors, never mutates the snapshot, and degrades missing fields to
// the placeholder policy in fields.go.
package render

import (
	"fmt"
	"time"

	"agreement-workers/internal/agreement/catalog"
	"agreement-workers/internal/agreement/finance"
	"agreement-workers/internal/models"
)

// Possession offsets fixed by purchase policy, in days from the anchor date.
const (
	possessionDaysStandard   = 30
	possessionDaysCommercial = 45
)

// Input is the full render tuple. PlanID applies to purchase documents,
// DurationMonths to rental documents; the other is ignored.
type Input struct {
	Family          string
	TemplateID      string
	Property        *models.Property
	Party           *models.Party
	PlanID          string
	DurationMonths  int
	ReferenceNumber string
	AnchorDate      time.Time
}

type Renderer struct {
	catalog *catalog.Catalog
}

// New builds a Renderer over an injected catalog.
func New(c *catalog.Catalog) *Renderer {
	if c == nil {
		c = catalog.Default()
	}
	return &Renderer{catalog: c}
}

// Render selects one of the six structural variants and assembles the
// document. An unknown or empty template id silently renders the standard
// variant; the output for "nonexistent" is identical to an explicit
// "standard" request.
func (r *Renderer) Render(in Input) *models.RenderedDocument {
	tpl, ok := r.catalog.FindTemplate(in.Family, in.TemplateID)
	if !ok {
		tpl, _ = r.catalog.FindTemplate(in.Family, catalog.TemplateStandard)
	}

	if in.Family == models.FamilyPurchase {
		return r.renderPurchase(in, tpl)
	}
	return r.renderRental(in, tpl)
}

// resolveDuration maps the selected month count onto a catalog duration. The
// wizard gates on a selection being present, but rendering stays total: an
// off-catalog positive value is kept as-is, anything else falls back to the
// first catalog entry.
func (r *Renderer) resolveDuration(months int) catalog.Duration {
	if d, ok := r.catalog.FindDuration(months); ok {
		return d
	}
	if months > 0 {
		return catalog.Duration{Label: fmt.Sprintf("%d Months", months), Months: months}
	}
	return r.catalog.RentalDurations[0]
}

func (r *Renderer) resolvePlan(id string) catalog.PaymentPlan {
	if p, ok := r.catalog.FindPlan(id); ok {
		return p
	}
	return r.catalog.PurchasePlans[0]
}

// partiesSection is shared by all six variants; only the role labels differ.
func partiesSection(in Input, firstRole, secondRole string, madeOn string) models.Section {
	var owner models.Owner
	if in.Property != nil {
		owner = in.Property.Owner
	}
	return models.Section{
		Key:     "parties",
		Heading: "Parties",
		Paragraphs: []string{
			fmt.Sprintf("This agreement is made on %s between the parties identified below.", madeOn),
		},
		Rows: []models.TableRow{
			{Label: firstRole, Value: ownerName(owner)},
			{Label: firstRole + " Contact", Value: ownerContact(owner)},
			{Label: secondRole, Value: partyName(in.Party, secondRole)},
			{Label: secondRole + " Contact", Value: partyContact(in.Party)},
			{Label: secondRole + " ID Proof", Value: partyIDProof(in.Party)},
		},
	}
}

// propertySection is the schedule of the premises, shared by all variants.
func propertySection(p *models.Property, heading string) models.Section {
	var loc models.Location
	var spec models.Specifications
	propType := PlaceholderText
	if p != nil {
		loc = p.Location
		spec = p.Specifications
		propType = text(p.PropertyType)
	}
	return models.Section{
		Key:     "property",
		Heading: heading,
		Rows: []models.TableRow{
			{Label: "Property", Value: propertyTitle(p)},
			{Label: "Address", Value: addressLine(loc)},
			{Label: "Type", Value: propType},
			{Label: "Bedrooms", Value: countOr(spec.Bedrooms)},
			{Label: "Bathrooms", Value: countOr(spec.Bathrooms)},
			{Label: "Carpet Area", Value: text(spec.CarpetArea)},
			{Label: "Furnishing", Value: text(spec.Furnishing)},
			{Label: "Floor", Value: text(spec.FloorNumber)},
		},
	}
}

func signatureBlocks(in Input, firstRole, secondRole string) []models.SignatureBlock {
	var owner models.Owner
	if in.Property != nil {
		owner = in.Property.Owner
	}
	return []models.SignatureBlock{
		{Role: firstRole, Name: ownerName(owner)},
		{Role: secondRole, Name: partyName(in.Party, secondRole)},
		{Role: "Witness 1", Name: PlaceholderText},
		{Role: "Witness 2", Name: PlaceholderText},
	}
}

func footnote(in Input) string {
	return fmt.Sprintf(
		"Reference No. %s · Generated on %s · Draft for review; not a registered instrument.",
		textOr(in.ReferenceNumber, PlaceholderText),
		finance.FormatDate(in.AnchorDate),
	)
}

func price(p *models.Property) float64 {
	if p == nil {
		return 0
	}
	return p.Price
}
