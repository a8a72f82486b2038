// pkg/registry/schema.go
package registry

// CatalogRegistry is the on-disk JSON form of the template catalog. A
// deployment can ship its own registry file to override the built-in
// catalog copy without a code change.
type CatalogRegistry struct {
	Version           string         `json:"version"`
	LastUpdated       string         `json:"lastUpdated"`
	RentalTemplates   []TemplateSpec `json:"rentalTemplates"`
	PurchaseTemplates []TemplateSpec `json:"purchaseTemplates"`
	RentalDurations   []DurationSpec `json:"rentalDurations"`
	PurchasePlans     []PlanSpec     `json:"purchasePlans"`
}

type TemplateSpec struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tag         string   `json:"tag"`
	TagColor    string   `json:"tagColor"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

type DurationSpec struct {
	Label  string `json:"label"`
	Months int    `json:"months"`
}

type PlanSpec struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// registrySchema validates the structural shape of a registry file before
// it replaces the built-in catalog.
const registrySchema = `{
	"type": "object",
	"required": ["version", "rentalTemplates", "purchaseTemplates", "rentalDurations", "purchasePlans"],
	"properties": {
		"version": {"type": "string", "minLength": 1},
		"lastUpdated": {"type": "string"},
		"rentalTemplates": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/template"}},
		"purchaseTemplates": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/template"}},
		"rentalDurations": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["label", "months"],
				"properties": {
					"label": {"type": "string", "minLength": 1},
					"months": {"type": "integer", "minimum": 1}
				}
			}
		},
		"purchasePlans": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["id", "label", "steps"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"label": {"type": "string", "minLength": 1},
					"description": {"type": "string"},
					"steps": {"type": "array", "minItems": 1, "items": {"type": "string"}}
				}
			}
		}
	},
	"definitions": {
		"template": {
			"type": "object",
			"required": ["id", "name", "description"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"name": {"type": "string", "minLength": 1},
				"tag": {"type": "string"},
				"tagColor": {"type": "string"},
				"description": {"type": "string"},
				"features": {"type": "array", "items": {"type": "string"}}
			}
		}
	}
}`
