// internal/agreement/render/fields.go
package render

import (
	"fmt"
	"strings"

	"agreement-workers/internal/models"
)

// Placeholder policy. Every optional display field resolves here, in one
// place, rather than through scattered fallbacks at each call site:
//
//	owner/seller/landlord name  -> "Property Owner"
//	counterparty name           -> role label ("Tenant", "Buyer", "Lessee")
//	phone / email / id proof    -> "—"
//	free-text property fields   -> "—"
//	property title              -> "the scheduled property"
const (
	PlaceholderOwnerName     = "Property Owner"
	PlaceholderContact       = "—"
	PlaceholderText          = "—"
	PlaceholderPropertyTitle = "the scheduled property"
)

func textOr(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func text(value string) string {
	return textOr(value, PlaceholderText)
}

// ownerName resolves the listing owner's display name, preferring the company
// name for commercial counterparties.
func ownerName(o models.Owner) string {
	if strings.TrimSpace(o.CompanyName) != "" {
		return o.CompanyName
	}
	return textOr(o.Name, PlaceholderOwnerName)
}

func ownerContact(o models.Owner) string {
	return contactLine(o.Phone, o.Email)
}

// partyName resolves the counterparty's display name; the role label stands
// in when the hosting page passed no name.
func partyName(p *models.Party, role string) string {
	if p == nil {
		return role
	}
	return textOr(p.Name, role)
}

func partyContact(p *models.Party) string {
	if p == nil {
		return PlaceholderContact
	}
	return contactLine(p.Phone, p.Email)
}

func partyIDProof(p *models.Party) string {
	if p == nil {
		return PlaceholderContact
	}
	return textOr(p.IDProofNote, PlaceholderContact)
}

func contactLine(phone, email string) string {
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)
	switch {
	case phone != "" && email != "":
		return phone + " · " + email
	case phone != "":
		return phone
	case email != "":
		return email
	default:
		return PlaceholderContact
	}
}

func propertyTitle(p *models.Property) string {
	if p == nil {
		return PlaceholderPropertyTitle
	}
	return textOr(p.Title, PlaceholderPropertyTitle)
}

func addressLine(loc models.Location) string {
	parts := []string{}
	for _, part := range []string{loc.Address, loc.City, loc.State, loc.Pincode} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return PlaceholderText
	}
	return strings.Join(parts, ", ")
}

func countOr(n int) string {
	if n <= 0 {
		return PlaceholderText
	}
	return fmt.Sprintf("%d", n)
}
