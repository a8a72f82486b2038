// cmd/tools/catalog-registry/main.go

// catalog-registry maintains the optional template catalog override file.
// "validate" checks a registry file against the schema before deployment;
// "export" writes the built-in catalog as a registry file to start from.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"agreement-workers/internal/agreement/catalog"
	"agreement-workers/pkg/registry"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	validatePath := validateCmd.String("path", "configs/catalog-registry.json", "Path to registry file")

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportPath := exportCmd.String("path", "configs/catalog-registry.json", "Output path for registry file")
	exportVersion := exportCmd.String("version", "1.0.0", "Registry version string")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		reg, err := registry.LoadRegistry(*validatePath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		cat := reg.ToCatalog()
		fmt.Printf("Registry %s is valid (version %s)\n", *validatePath, reg.Version)
		fmt.Printf("  rental templates:   %d\n", len(cat.RentalTemplates))
		fmt.Printf("  purchase templates: %d\n", len(cat.PurchaseTemplates))
		fmt.Printf("  rental durations:   %d\n", len(cat.RentalDurations))
		fmt.Printf("  purchase plans:     %d\n", len(cat.PurchasePlans))

	case "export":
		exportCmd.Parse(os.Args[2:])
		if err := exportBuiltin(*exportPath, *exportVersion); err != nil {
			fmt.Printf("Error exporting catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Built-in catalog written to %s\n", *exportPath)

	default:
		help()
		os.Exit(1)
	}
}

func exportBuiltin(path, version string) error {
	cat := catalog.Default()
	reg := registry.CatalogRegistry{
		Version:           version,
		LastUpdated:       time.Now().Format("2006-01-02"),
		RentalTemplates:   toSpecs(cat.RentalTemplates),
		PurchaseTemplates: toSpecs(cat.PurchaseTemplates),
		RentalDurations:   toDurationSpecs(cat.RentalDurations),
		PurchasePlans:     toPlanSpecs(cat.PurchasePlans),
	}

	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func toSpecs(templates []catalog.Template) []registry.TemplateSpec {
	out := make([]registry.TemplateSpec, len(templates))
	for i, t := range templates {
		out[i] = registry.TemplateSpec{
			ID:          t.ID,
			Name:        t.Name,
			Tag:         t.Tag,
			TagColor:    t.TagColor,
			Description: t.Description,
			Features:    t.Features,
		}
	}
	return out
}

func toDurationSpecs(durations []catalog.Duration) []registry.DurationSpec {
	out := make([]registry.DurationSpec, len(durations))
	for i, d := range durations {
		out[i] = registry.DurationSpec{Label: d.Label, Months: d.Months}
	}
	return out
}

func toPlanSpecs(plans []catalog.PaymentPlan) []registry.PlanSpec {
	out := make([]registry.PlanSpec, len(plans))
	for i, p := range plans {
		out[i] = registry.PlanSpec{
			ID:          p.ID,
			Label:       p.Label,
			Description: p.Description,
			Steps:       p.Steps,
		}
	}
	return out
}

func help() {
	fmt.Println("Usage: catalog-registry <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate  Validate a catalog registry file against the schema")
	fmt.Println("  export    Write the built-in catalog as a registry file")
}
