package render

import (
	"testing"
	"time"

	"agreement-workers/internal/agreement/catalog"
	"agreement-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProperty(listingType string, price float64) *models.Property {
	return &models.Property{
		ID:           "prop-001",
		Title:        "Green Acres 3BHK",
		Price:        price,
		ListingType:  listingType,
		PropertyType: "Apartment",
		Location: models.Location{
			Address: "14 Lake View Road",
			City:    "Pune",
			State:   "Maharashtra",
			Pincode: "411001",
		},
		Specifications: models.Specifications{
			Bedrooms:    3,
			Bathrooms:   2,
			CarpetArea:  "1450 sq ft",
			Furnishing:  "Semi-Furnished",
			FloorNumber: "7",
		},
		Owner: models.Owner{
			Name:  "Ramesh Patil",
			Phone: "+91 98200 11223",
			Email: "ramesh@example.com",
		},
	}
}

func testParty() *models.Party {
	return &models.Party{
		Name:  "Anita Desai",
		Phone: "+91 98111 44556",
		Email: "anita@example.com",
	}
}

func anchor() time.Time {
	return time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)
}

func rentalInput(templateID string, months int) Input {
	return Input{
		Family:          models.FamilyRental,
		TemplateID:      templateID,
		Property:        testProperty(models.ListingTypeRent, 45000),
		Party:           testParty(),
		DurationMonths:  months,
		ReferenceNumber: "58214907",
		AnchorDate:      anchor(),
	}
}

func purchaseInput(templateID, planID string) Input {
	return Input{
		Family:          models.FamilyPurchase,
		TemplateID:      templateID,
		Property:        testProperty(models.ListingTypeBuy, 4500000),
		Party:           testParty(),
		PlanID:          planID,
		ReferenceNumber: "58214907",
		AnchorDate:      anchor(),
	}
}

func findSection(t *testing.T, doc *models.RenderedDocument, key string) models.Section {
	t.Helper()
	for _, s := range doc.Sections {
		if s.Key == key {
			return s
		}
	}
	t.Fatalf("section %q not found in %v", key, doc.SectionKeys())
	return models.Section{}
}

func rowValue(t *testing.T, s models.Section, label string) string {
	t.Helper()
	for _, row := range s.Rows {
		if row.Label == label {
			return row.Value
		}
	}
	t.Fatalf("row %q not found in section %q", label, s.Key)
	return ""
}

func TestStandardRentalSectionOrder(t *testing.T) {
	doc := New(nil).Render(rentalInput("standard", 6))

	assert.Equal(t,
		[]string{"parties", "property", "term", "rent-deposit", "maintenance", "rules", "termination"},
		doc.SectionKeys(),
	)
	assert.Len(t, doc.Signatures, 4)
	assert.Equal(t, "Landlord", doc.Signatures[0].Role)
	assert.Equal(t, "Tenant", doc.Signatures[1].Role)
}

func TestStandardRentalFinancials(t *testing.T) {
	in := rentalInput("standard", 6)
	in.Property.Price = 4500000
	doc := New(nil).Render(in)

	rent := findSection(t, doc, "rent-deposit")
	assert.Equal(t, "₹45,00,000", rowValue(t, rent, "Monthly Rent"))
	assert.Equal(t, "₹90,00,000", rowValue(t, rent, "Security Deposit (2 months)"))

	term := findSection(t, doc, "term")
	assert.Equal(t, "01 December 2025", rowValue(t, term, "Expiry Date"))
	assert.Equal(t, "6 Months", rowValue(t, term, "Duration"))
}

func TestRentalExpiryClampsMonthEnd(t *testing.T) {
	in := rentalInput("standard", 3)
	in.AnchorDate = time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	doc := New(nil).Render(in)

	term := findSection(t, doc, "term")
	assert.Equal(t, "30 April 2025", rowValue(t, term, "Expiry Date"))
}

func TestCommercialRentalHasGSTRow(t *testing.T) {
	doc := New(nil).Render(rentalInput("commercial", 6))

	rent := findSection(t, doc, "rent-deposit")
	assert.Equal(t, "₹8,100", rowValue(t, rent, "GST on Rent (18%)"))
	assert.Equal(t, "₹53,100", rowValue(t, rent, "Monthly Outgo incl. GST"))

	// Commercial-only sections present; residential house rules absent.
	findSection(t, doc, "fit-out")
	findSection(t, doc, "signage-parking")
	findSection(t, doc, "arbitration")
	assert.NotContains(t, doc.SectionKeys(), "rules")

	parties := findSection(t, doc, "parties")
	assert.Equal(t, "Ramesh Patil", rowValue(t, parties, "Lessor"))
}

func TestStandardRentalHasNoGSTRow(t *testing.T) {
	doc := New(nil).Render(rentalInput("standard", 3))
	rent := findSection(t, doc, "rent-deposit")
	for _, row := range rent.Rows {
		assert.NotContains(t, row.Label, "GST")
	}
}

func TestPurchaseFinancialSplit(t *testing.T) {
	doc := New(nil).Render(purchaseInput("standard", "full"))

	fin := findSection(t, doc, "financial")
	assert.Equal(t, "₹45,00,000", rowValue(t, fin, "Total Consideration"))
	assert.Equal(t, "₹4,50,000", rowValue(t, fin, "Token Amount (10%)"))
	assert.Equal(t, "₹40,50,000", rowValue(t, fin, "Balance Payable (90%)"))
}

func TestPurchasePossessionOffsets(t *testing.T) {
	tests := []struct {
		templateID string
		days       int
		expected   string
	}{
		{"standard", 30, "01 July 2025"},
		{"premium", 30, "01 July 2025"},
		{"commercial", 45, "16 July 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.templateID, func(t *testing.T) {
			doc := New(nil).Render(purchaseInput(tt.templateID, "full"))
			poss := findSection(t, doc, "possession")
			label := "Possession By (30 days)"
			if tt.days == 45 {
				label = "Possession By (45 days)"
			}
			assert.Equal(t, tt.expected, rowValue(t, poss, label))
		})
	}
}

func TestPremiumPurchaseClauseOrder(t *testing.T) {
	doc := New(nil).Render(purchaseInput("premium", "homeloan"))

	keys := doc.SectionKeys()
	expectedTail := []string{"title-warranty", "encumbrance", "inspection", "fixtures", "force-majeure", "default"}
	require.GreaterOrEqual(t, len(keys), len(expectedTail))
	assert.Equal(t, expectedTail, keys[len(keys)-len(expectedTail):])
}

func TestCommercialPurchaseGSTAndArbitration(t *testing.T) {
	doc := New(nil).Render(purchaseInput("commercial", "installment"))

	fin := findSection(t, doc, "financial")
	assert.Equal(t, "₹5,40,000", rowValue(t, fin, "GST on Consideration (12%)"))
	assert.Equal(t, "₹50,40,000", rowValue(t, fin, "Total incl. GST"))
	findSection(t, doc, "arbitration")
}

func TestPaymentPlanStepsRendered(t *testing.T) {
	doc := New(nil).Render(purchaseInput("standard", "installment"))
	plan := findSection(t, doc, "payment-plan")
	assert.Equal(t, []string{
		"10% token on signing",
		"40% within 30 days",
		"50% at registration",
	}, plan.Clauses)
}

// Unknown template ids must render identically to the standard variant.
func TestUnknownTemplateFallsBackToStandard(t *testing.T) {
	r := New(nil)

	for _, family := range []string{models.FamilyRental, models.FamilyPurchase} {
		t.Run(family, func(t *testing.T) {
			var known, unknown, empty Input
			if family == models.FamilyRental {
				known, unknown, empty = rentalInput("standard", 3), rentalInput("nonexistent-id", 3), rentalInput("", 3)
			} else {
				known, unknown, empty = purchaseInput("standard", "full"), purchaseInput("nonexistent-id", "full"), purchaseInput("", "full")
			}
			assert.Equal(t, r.Render(known), r.Render(unknown))
			assert.Equal(t, r.Render(known), r.Render(empty))
		})
	}
}

// Rendering must never panic and must substitute placeholders when every
// optional field is absent.
func TestPlaceholderTotality(t *testing.T) {
	in := Input{
		Family:     models.FamilyRental,
		TemplateID: "standard",
		Property:   &models.Property{ListingType: models.ListingTypeRent},
		AnchorDate: anchor(),
	}

	var doc *models.RenderedDocument
	assert.NotPanics(t, func() { doc = New(nil).Render(in) })

	parties := findSection(t, doc, "parties")
	assert.Equal(t, "Property Owner", rowValue(t, parties, "Landlord"))
	assert.Equal(t, "—", rowValue(t, parties, "Landlord Contact"))
	assert.Equal(t, "Tenant", rowValue(t, parties, "Tenant"))

	prop := findSection(t, doc, "property")
	assert.Equal(t, "the scheduled property", rowValue(t, prop, "Property"))
	assert.Equal(t, "—", rowValue(t, prop, "Address"))

	rent := findSection(t, doc, "rent-deposit")
	assert.Equal(t, "₹0", rowValue(t, rent, "Monthly Rent"))
}

func TestNilPropertyDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		doc := New(nil).Render(Input{Family: models.FamilyPurchase, AnchorDate: anchor()})
		assert.False(t, doc.IsEmpty())
	})
}

func TestCompanyNamePreferredForCommercialOwner(t *testing.T) {
	in := rentalInput("commercial", 6)
	in.Property.Owner.CompanyName = "Lakeview Estates LLP"
	doc := New(nil).Render(in)

	parties := findSection(t, doc, "parties")
	assert.Equal(t, "Lakeview Estates LLP", rowValue(t, parties, "Lessor"))
}

// An injected catalog replaces the built-in copy.
func TestInjectedCatalog(t *testing.T) {
	c := catalog.Default()
	c.RentalTemplates[0].Name = "Bespoke Rental Agreement"

	doc := New(c).Render(rentalInput("standard", 1))
	assert.Equal(t, "Bespoke Rental Agreement", doc.Title)
}
