package catalog

import (
	"testing"

	"agreement-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	assert.Len(t, c.RentalTemplates, 3)
	assert.Len(t, c.PurchaseTemplates, 3)
	assert.Len(t, c.RentalDurations, 3)
	assert.Len(t, c.PurchasePlans, 3)

	for _, family := range []string{models.FamilyRental, models.FamilyPurchase} {
		ids := []string{}
		for _, tpl := range c.Templates(family) {
			ids = append(ids, tpl.ID)
			assert.NotEmpty(t, tpl.Name)
			assert.NotEmpty(t, tpl.Description)
			assert.NotEmpty(t, tpl.Features)
		}
		assert.Equal(t, []string{TemplateStandard, TemplatePremium, TemplateCommercial}, ids)
	}
}

func TestFindTemplate(t *testing.T) {
	c := Default()

	tests := []struct {
		name       string
		family     string
		id         string
		expectOK   bool
		expectName string
	}{
		{"rental standard", models.FamilyRental, "standard", true, "Standard Rental Agreement"},
		{"purchase commercial", models.FamilyPurchase, "commercial", true, "Commercial Purchase Agreement"},
		{"unknown id", models.FamilyRental, "deluxe", false, ""},
		{"empty id", models.FamilyPurchase, "", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, ok := c.FindTemplate(tt.family, tt.id)
			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				assert.Equal(t, tt.expectName, tpl.Name)
			}
		})
	}
}

func TestFindDurationAndPlan(t *testing.T) {
	c := Default()

	d, ok := c.FindDuration(6)
	assert.True(t, ok)
	assert.Equal(t, "6 Months", d.Label)

	_, ok = c.FindDuration(12)
	assert.False(t, ok)

	p, ok := c.FindPlan(PlanHomeLoan)
	assert.True(t, ok)
	assert.Equal(t, "Home Loan", p.Label)
	assert.NotEmpty(t, p.Steps)

	_, ok = c.FindPlan("crypto")
	assert.False(t, ok)
}

func TestTemplatesUnknownFamilyDefaultsToRental(t *testing.T) {
	c := Default()
	assert.Equal(t, c.RentalTemplates, c.Templates("timeshare"))
}
