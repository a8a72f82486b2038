// internal/agreement/render/rental.go
package render

import (
	"fmt"

	"agreement-workers/internal/agreement/catalog"
	"agreement-workers/internal/agreement/finance"
	"agreement-workers/internal/models"
)

func (r *Renderer) renderRental(in Input, tpl catalog.Template) *models.RenderedDocument {
	duration := r.resolveDuration(in.DurationMonths)

	firstRole, secondRole := "Landlord", "Tenant"
	if tpl.ID == catalog.TemplateCommercial {
		firstRole, secondRole = "Lessor", "Lessee"
	}

	doc := &models.RenderedDocument{
		Family:          models.FamilyRental,
		TemplateID:      tpl.ID,
		Title:           tpl.Name,
		Subtitle:        propertyTitle(in.Property),
		ReferenceNumber: in.ReferenceNumber,
		GeneratedAt:     in.AnchorDate,
		Signatures:      signatureBlocks(in, firstRole, secondRole),
		Footnote:        footnote(in),
	}

	doc.Sections = append(doc.Sections,
		partiesSection(in, firstRole, secondRole, finance.FormatDate(in.AnchorDate)),
		propertySection(in.Property, "Property"),
		rentalTermSection(in, duration),
		rentalRentDepositSection(in, tpl),
	)

	switch tpl.ID {
	case catalog.TemplatePremium:
		doc.Sections = append(doc.Sections,
			rentalLockInSection(duration),
			rentalInventorySection(in.Property),
			rentalRenewalSection(),
			rentalMaintenanceSection(true),
			rentalRulesSection(),
			rentalTerminationSection(secondRole),
		)
	case catalog.TemplateCommercial:
		doc.Sections = append(doc.Sections,
			rentalFitOutSection(),
			rentalSignageParkingSection(),
			rentalMaintenanceSection(false),
			rentalTerminationSection(secondRole),
			arbitrationSection(),
		)
	default:
		doc.Sections = append(doc.Sections,
			rentalMaintenanceSection(false),
			rentalRulesSection(),
			rentalTerminationSection(secondRole),
		)
	}

	return doc
}

func rentalTermSection(in Input, duration catalog.Duration) models.Section {
	end := finance.AddMonths(in.AnchorDate, duration.Months)
	return models.Section{
		Key:     "term",
		Heading: "Term",
		Rows: []models.TableRow{
			{Label: "Commencement Date", Value: finance.FormatDate(in.AnchorDate)},
			{Label: "Duration", Value: duration.Label},
			{Label: "Expiry Date", Value: finance.FormatDate(end)},
		},
	}
}

func rentalRentDepositSection(in Input, tpl catalog.Template) models.Section {
	rent := price(in.Property)
	rows := []models.TableRow{
		{Label: "Monthly Rent", Value: finance.FormatCurrency(rent)},
		{Label: "Security Deposit (2 months)", Value: finance.FormatCurrency(finance.Deposit(rent))},
	}
	if tpl.ID == catalog.TemplateCommercial {
		gst := finance.GSTAmount(rent, finance.GSTRateRentalCommercial)
		rows = append(rows,
			models.TableRow{Label: "GST on Rent (18%)", Value: finance.FormatCurrency(gst)},
			models.TableRow{Label: "Monthly Outgo incl. GST", Value: finance.FormatCurrency(rent + gst), Emphasis: true},
		)
	}
	return models.Section{
		Key:     "rent-deposit",
		Heading: "Rent & Deposit",
		Rows:    rows,
		Clauses: []string{
			"Rent is payable in advance on or before the 5th day of each calendar month.",
			"The security deposit is refundable within fifteen days of vacation, less agreed deductions.",
		},
	}
}

func rentalLockInSection(duration catalog.Duration) models.Section {
	lockIn := duration.Months
	if lockIn > 3 {
		lockIn = 3
	}
	return models.Section{
		Key:     "lock-in",
		Heading: "Lock-In Period",
		Clauses: []string{
			fmt.Sprintf("Neither party shall terminate this agreement within the first %d month(s) of the term except for material breach.", lockIn),
			"Early vacation within the lock-in period forfeits one month's rent from the security deposit.",
		},
	}
}

func rentalInventorySection(p *models.Property) models.Section {
	furnishing := PlaceholderText
	if p != nil {
		furnishing = text(p.Specifications.Furnishing)
	}
	return models.Section{
		Key:     "inventory",
		Heading: "Furnishing & Fixtures Inventory",
		Paragraphs: []string{
			fmt.Sprintf("The premises are let out on a %s basis. An itemised inventory of furnishings and fixtures, signed by both parties, forms part of this agreement.", furnishing),
		},
		Clauses: []string{
			"The tenant shall return all inventory items in working order, normal wear and tear excepted.",
		},
	}
}

func rentalRenewalSection() models.Section {
	return models.Section{
		Key:     "renewal",
		Heading: "Renewal",
		Clauses: []string{
			"The tenant holds a renewal option for an equal further term on one month's written notice before expiry.",
			"Rent escalation on renewal is capped at 5% of the expiring monthly rent.",
		},
	}
}

func rentalMaintenanceSection(priority bool) models.Section {
	clauses := []string{
		"Day-to-day upkeep and utility charges are borne by the tenant.",
		"Structural repairs and society/maintenance charges are borne by the landlord.",
	}
	if priority {
		clauses = append(clauses,
			"The landlord shall attend to reported defects within 48 hours of written notice.")
	}
	return models.Section{
		Key:     "maintenance",
		Heading: "Maintenance",
		Clauses: clauses,
	}
}

func rentalRulesSection() models.Section {
	return models.Section{
		Key:     "rules",
		Heading: "House Rules",
		Clauses: []string{
			"The premises shall be used for residential purposes only.",
			"Sub-letting, in whole or in part, requires the landlord's prior written consent.",
			"The tenant shall not make structural alterations to the premises.",
		},
	}
}

func rentalTerminationSection(secondRole string) models.Section {
	return models.Section{
		Key:     "termination",
		Heading: "Termination",
		Clauses: []string{
			"Either party may terminate this agreement with one month's written notice.",
			fmt.Sprintf("On termination the %s shall hand over vacant possession along with all keys and inventory items.", secondRole),
			"Unpaid dues may be adjusted against the security deposit at handover.",
		},
	}
}

func rentalFitOutSection() models.Section {
	return models.Section{
		Key:     "fit-out",
		Heading: "Fit-Out & Handover",
		Clauses: []string{
			"The lessee may carry out interior fit-out works with the lessor's prior written approval of plans.",
			"A rent-free fit-out period of fifteen days applies from the handover date.",
			"On expiry the premises shall be restored to bare-shell condition unless otherwise agreed in writing.",
		},
	}
}

func rentalSignageParkingSection() models.Section {
	return models.Section{
		Key:     "signage-parking",
		Heading: "Signage & Parking",
		Clauses: []string{
			"The lessee may display business signage at the designated facade location, subject to municipal approvals.",
			"Parking slots allotted to the premises are for the exclusive use of the lessee during the term.",
		},
	}
}

func arbitrationSection() models.Section {
	return models.Section{
		Key:     "arbitration",
		Heading: "Arbitration",
		Clauses: []string{
			"Disputes arising out of this agreement shall be referred to a sole arbitrator appointed by mutual consent.",
			"The seat of arbitration shall be the city in which the premises are situated.",
		},
	}
}
