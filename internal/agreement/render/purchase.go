// internal/agreement/render/purchase.go
package render

import (
	"fmt"

	"agreement-workers/internal/agreement/catalog"
	"agreement-workers/internal/agreement/finance"
	"agreement-workers/internal/models"
)

func (r *Renderer) renderPurchase(in Input, tpl catalog.Template) *models.RenderedDocument {
	plan := r.resolvePlan(in.PlanID)

	doc := &models.RenderedDocument{
		Family:          models.FamilyPurchase,
		TemplateID:      tpl.ID,
		Title:           tpl.Name,
		Subtitle:        propertyTitle(in.Property),
		ReferenceNumber: in.ReferenceNumber,
		GeneratedAt:     in.AnchorDate,
		Signatures:      signatureBlocks(in, "Seller", "Buyer"),
		Footnote:        footnote(in),
	}

	doc.Sections = append(doc.Sections,
		partiesSection(in, "Seller", "Buyer", finance.FormatDate(in.AnchorDate)),
		propertySection(in.Property, "Property Schedule"),
		purchaseFinancialSection(in, tpl),
		purchasePaymentPlanSection(plan),
		purchasePossessionSection(in, tpl),
	)

	switch tpl.ID {
	case catalog.TemplatePremium:
		// Fixed clause order for the premium variant.
		doc.Sections = append(doc.Sections,
			purchaseTitleWarrantySection(),
			purchaseEncumbranceSection(),
			purchaseInspectionSection(),
			purchaseFixturesSection(),
			purchaseForceMajeureSection(),
			purchaseDefaultSection(),
		)
	case catalog.TemplateCommercial:
		doc.Sections = append(doc.Sections,
			rentalFitOutSection(),
			rentalSignageParkingSection(),
			purchaseDefaultSection(),
			arbitrationSection(),
		)
	default:
		doc.Sections = append(doc.Sections,
			purchaseRegistrationSection(),
			purchaseDefaultSection(),
		)
	}

	return doc
}

func purchaseFinancialSection(in Input, tpl catalog.Template) models.Section {
	total := price(in.Property)
	rows := []models.TableRow{
		{Label: "Total Consideration", Value: finance.FormatCurrency(total), Emphasis: true},
		{Label: "Token Amount (10%)", Value: finance.FormatCurrency(finance.TokenAmount(total))},
		{Label: "Balance Payable (90%)", Value: finance.FormatCurrency(finance.BalanceAmount(total))},
	}
	if tpl.ID == catalog.TemplateCommercial {
		gst := finance.GSTAmount(total, finance.GSTRatePurchaseCommercial)
		rows = append(rows,
			models.TableRow{Label: "GST on Consideration (12%)", Value: finance.FormatCurrency(gst)},
			models.TableRow{Label: "Total incl. GST", Value: finance.FormatCurrency(total + gst), Emphasis: true},
		)
	}
	return models.Section{
		Key:     "financial",
		Heading: "Financial Terms",
		Rows:    rows,
		Clauses: []string{
			"The token amount is payable on execution of this agreement and is adjusted against the total consideration.",
		},
	}
}

func purchasePaymentPlanSection(plan catalog.PaymentPlan) models.Section {
	return models.Section{
		Key:        "payment-plan",
		Heading:    "Payment Plan",
		Paragraphs: []string{fmt.Sprintf("Selected plan: %s — %s", plan.Label, plan.Description)},
		Clauses:    plan.Steps,
	}
}

func purchasePossessionSection(in Input, tpl catalog.Template) models.Section {
	days := possessionDaysStandard
	if tpl.ID == catalog.TemplateCommercial {
		days = possessionDaysCommercial
	}
	possession := finance.AddDays(in.AnchorDate, days)
	return models.Section{
		Key:     "possession",
		Heading: "Possession & Registration",
		Rows: []models.TableRow{
			{Label: "Agreement Date", Value: finance.FormatDate(in.AnchorDate)},
			{Label: fmt.Sprintf("Possession By (%d days)", days), Value: finance.FormatDate(possession)},
		},
		Clauses: []string{
			"The sale deed shall be executed and registered on or before the possession date, subject to full payment.",
			"Vacant and peaceful possession shall be handed over at registration.",
		},
	}
}

func purchaseRegistrationSection() models.Section {
	return models.Section{
		Key:     "registration",
		Heading: "Registration & Stamp Duty",
		Clauses: []string{
			"Stamp duty and registration charges shall be borne by the buyer unless otherwise agreed in writing.",
			"The seller shall produce all original title documents at registration.",
		},
	}
}

func purchaseTitleWarrantySection() models.Section {
	return models.Section{
		Key:     "title-warranty",
		Heading: "Title Warranty",
		Clauses: []string{
			"The seller warrants absolute, marketable title to the property, free of claims and pending litigation.",
			"The seller shall indemnify the buyer against any defect in title discovered after registration.",
		},
	}
}

func purchaseEncumbranceSection() models.Section {
	return models.Section{
		Key:     "encumbrance",
		Heading: "Encumbrance Guarantee",
		Clauses: []string{
			"The seller guarantees the property is free of mortgages, charges, liens and attachments.",
			"An encumbrance certificate covering the preceding thirteen years shall be furnished before registration.",
		},
	}
}

func purchaseInspectionSection() models.Section {
	return models.Section{
		Key:     "inspection",
		Heading: "Inspection Rights",
		Clauses: []string{
			"The buyer may inspect the property, with reasonable notice, at any time before registration.",
			"Material defects found on inspection shall be remedied by the seller before the possession date.",
		},
	}
}

func purchaseFixturesSection() models.Section {
	return models.Section{
		Key:     "fixtures",
		Heading: "Fixtures & Fittings Handover",
		Clauses: []string{
			"All fixtures, fittings and amenities listed in the annexed schedule pass to the buyer at possession.",
			"The property shall be handed over in the same condition as at the date of this agreement.",
		},
	}
}

func purchaseForceMajeureSection() models.Section {
	return models.Section{
		Key:     "force-majeure",
		Heading: "Force Majeure",
		Clauses: []string{
			"Neither party is liable for delay caused by events beyond reasonable control, including natural calamity and government order.",
			"Timelines under this agreement extend by the duration of the force majeure event, up to ninety days.",
		},
	}
}

func purchaseDefaultSection() models.Section {
	return models.Section{
		Key:     "default",
		Heading: "Default & Refund",
		Clauses: []string{
			"If the buyer fails to pay the balance by the agreed date, the seller may cancel this agreement and forfeit the token amount.",
			"If the seller fails to complete the sale, the token amount is refundable together with an equal sum as liquidated damages.",
		},
	}
}
