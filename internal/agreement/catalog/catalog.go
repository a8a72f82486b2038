// internal/agreement/catalog/catalog.go

// Package catalog holds the read-only template and plan catalogs for both
// agreement families. The catalog is constructed explicitly and passed into
// consumers rather than exposed as package globals, so tests can substitute
// alternate catalogs.
package catalog

import "agreement-workers/internal/models"

// Known template ids, shared by both families.
const (
	TemplateStandard   = "standard"
	TemplatePremium    = "premium"
	TemplateCommercial = "commercial"
)

// Purchase payment plan ids.
const (
	PlanFull        = "full"
	PlanInstallment = "installment"
	PlanHomeLoan    = "homeloan"
)

// Template describes one structural document variant.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tag         string   `json:"tag"`
	TagColor    string   `json:"tagColor"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// Duration is a rental term length option.
type Duration struct {
	Label  string `json:"label"`
	Months int    `json:"months"`
}

// PaymentPlan is a purchase payment schedule option.
type PaymentPlan struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// Catalog is the full read-only registry: three templates per family, three
// rental durations and three purchase plans. Instances are never mutated
// after construction.
type Catalog struct {
	RentalTemplates   []Template
	PurchaseTemplates []Template
	RentalDurations   []Duration
	PurchasePlans     []PaymentPlan
}

// Templates returns the template list for a family. Unknown family returns
// the rental list, matching the renderer's rental-by-default behavior for
// non-"buy" listings.
func (c *Catalog) Templates(family string) []Template {
	if family == models.FamilyPurchase {
		return c.PurchaseTemplates
	}
	return c.RentalTemplates
}

// FindTemplate looks up a template by family and id. The second return is
// false when the id matches none of the three known templates; callers fall
// back to the first (standard) entry.
func (c *Catalog) FindTemplate(family, id string) (Template, bool) {
	for _, t := range c.Templates(family) {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// FindDuration looks up a rental duration by month count.
func (c *Catalog) FindDuration(months int) (Duration, bool) {
	for _, d := range c.RentalDurations {
		if d.Months == months {
			return d, true
		}
	}
	return Duration{}, false
}

// FindPlan looks up a purchase payment plan by id.
func (c *Catalog) FindPlan(id string) (PaymentPlan, bool) {
	for _, p := range c.PurchasePlans {
		if p.ID == id {
			return p, true
		}
	}
	return PaymentPlan{}, false
}

// Default returns the built-in catalog. Copy here mirrors what the
// marketplace shows on the template cards.
func Default() *Catalog {
	return &Catalog{
		RentalTemplates: []Template{
			{
				ID:          TemplateStandard,
				Name:        "Standard Rental Agreement",
				Tag:         "Most Used",
				TagColor:    "green",
				Description: "Straightforward residential lease covering rent, deposit and notice terms.",
				Features: []string{
					"Monthly rent and two-month security deposit",
					"Maintenance responsibilities",
					"House rules and notice period",
					"One-month termination notice",
				},
			},
			{
				ID:          TemplatePremium,
				Name:        "Premium Rental Agreement",
				Tag:         "Recommended",
				TagColor:    "blue",
				Description: "Extended residential lease with tenant protections and inventory schedule.",
				Features: []string{
					"Everything in Standard",
					"Lock-in period protection",
					"Furnishing and fixtures inventory",
					"Renewal option with capped escalation",
					"Priority maintenance commitment",
				},
			},
			{
				ID:          TemplateCommercial,
				Name:        "Commercial Lease Agreement",
				Tag:         "Business",
				TagColor:    "purple",
				Description: "Lease for shops and offices with GST-compliant invoicing.",
				Features: []string{
					"GST-compliant rent invoicing (18%)",
					"Fit-out and handover terms",
					"Signage and parking rights",
					"Arbitration clause",
				},
			},
		},
		PurchaseTemplates: []Template{
			{
				ID:          TemplateStandard,
				Name:        "Standard Sale Agreement",
				Tag:         "Most Used",
				TagColor:    "green",
				Description: "Agreement to sell with the usual token, balance and registration terms.",
				Features: []string{
					"10% token, 90% on registration",
					"Possession within 30 days",
					"Registration and stamp duty split",
					"Default and refund terms",
				},
			},
			{
				ID:          TemplatePremium,
				Name:        "Premium Buyer Agreement",
				Tag:         "Recommended",
				TagColor:    "blue",
				Description: "Buyer-protective agreement with title and encumbrance guarantees.",
				Features: []string{
					"Title warranty",
					"Encumbrance guarantee",
					"Pre-registration inspection rights",
					"Fixtures and fittings handover",
					"Force majeure protection",
				},
			},
			{
				ID:          TemplateCommercial,
				Name:        "Commercial Purchase Agreement",
				Tag:         "Business",
				TagColor:    "purple",
				Description: "Purchase of commercial premises with GST on consideration.",
				Features: []string{
					"GST on consideration (12%)",
					"Fit-out and handover schedule",
					"Signage and parking allocation",
					"Arbitration clause",
					"Possession within 45 days",
				},
			},
		},
		RentalDurations: []Duration{
			{Label: "1 Month", Months: 1},
			{Label: "3 Months", Months: 3},
			{Label: "6 Months", Months: 6},
		},
		PurchasePlans: []PaymentPlan{
			{
				ID:          PlanFull,
				Label:       "Full Payment",
				Description: "Entire consideration settled at registration.",
				Steps: []string{
					"10% token on signing",
					"90% balance at registration",
				},
			},
			{
				ID:          PlanInstallment,
				Label:       "Installments",
				Description: "Consideration paid in staged installments.",
				Steps: []string{
					"10% token on signing",
					"40% within 30 days",
					"50% at registration",
				},
			},
			{
				ID:          PlanHomeLoan,
				Label:       "Home Loan",
				Description: "Balance disbursed by the buyer's lender.",
				Steps: []string{
					"10% token on signing",
					"Bank sanction within 45 days",
					"90% disbursed by lender at registration",
				},
			},
		},
	}
}
