// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"agreement-workers/internal/agreement/catalog"

	"github.com/xeipuuv/gojsonschema"
)

// LoadRegistry reads and validates a catalog registry file.
func LoadRegistry(path string) (*CatalogRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	schemaLoader := gojsonschema.NewStringLoader(registrySchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("registry schema validation error: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid registry file %s: %s", path, strings.Join(msgs, "; "))
	}

	var reg CatalogRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// ToCatalog converts a validated registry into the runtime catalog form.
func (r *CatalogRegistry) ToCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		RentalTemplates:   toTemplates(r.RentalTemplates),
		PurchaseTemplates: toTemplates(r.PurchaseTemplates),
		RentalDurations:   toDurations(r.RentalDurations),
		PurchasePlans:     toPlans(r.PurchasePlans),
	}
}

// LoadCatalog resolves the catalog for a deployment: a registry file when
// a path is configured, the built-in catalog otherwise.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	reg, err := LoadRegistry(path)
	if err != nil {
		return nil, err
	}
	return reg.ToCatalog(), nil
}

func toTemplates(specs []TemplateSpec) []catalog.Template {
	out := make([]catalog.Template, len(specs))
	for i, s := range specs {
		out[i] = catalog.Template{
			ID:          s.ID,
			Name:        s.Name,
			Tag:         s.Tag,
			TagColor:    s.TagColor,
			Description: s.Description,
			Features:    s.Features,
		}
	}
	return out
}

func toDurations(specs []DurationSpec) []catalog.Duration {
	out := make([]catalog.Duration, len(specs))
	for i, s := range specs {
		out[i] = catalog.Duration{Label: s.Label, Months: s.Months}
	}
	return out
}

func toPlans(specs []PlanSpec) []catalog.PaymentPlan {
	out := make([]catalog.PaymentPlan, len(specs))
	for i, s := range specs {
		out[i] = catalog.PaymentPlan{
			ID:          s.ID,
			Label:       s.Label,
			Description: s.Description,
			Steps:       s.Steps,
		}
	}
	return out
}
