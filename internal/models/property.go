// internal/models/property.go
package models

// ListingType values determine which agreement family applies.
const (
	ListingTypeBuy  = "buy"
	ListingTypeRent = "rent"
	ListingTypePG   = "pg"
)

// Property is the read-only listing snapshot materialized by fetch-property.
// The marketplace owns the record; workers never write it back.
type Property struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Description    string         `json:"description,omitempty"`
	Price          float64        `json:"price"`
	ListingType    string         `json:"listingType"`
	PropertyType   string         `json:"propertyType,omitempty"`
	Location       Location       `json:"location"`
	Specifications Specifications `json:"specifications"`
	Owner          Owner          `json:"owner"`
}

type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

type Specifications struct {
	Bedrooms    int    `json:"bedrooms,omitempty"`
	Bathrooms   int    `json:"bathrooms,omitempty"`
	CarpetArea  string `json:"carpetArea,omitempty"`
	Furnishing  string `json:"furnishing,omitempty"`
	FloorNumber string `json:"floorNumber,omitempty"`
}

type Owner struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// Party is a display-only view over a user or owner. It carries no ownership
// semantics; absent fields are resolved to placeholders at render time.
type Party struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	IDProofNote string `json:"idProofNote,omitempty"`
}

// AgreementFamily returns the document family for the listing type:
// "buy" maps to purchase agreements, "rent" and "pg" to rental agreements.
func (p *Property) AgreementFamily() string {
	if p.ListingType == ListingTypeBuy {
		return "purchase"
	}
	return "rental"
}
