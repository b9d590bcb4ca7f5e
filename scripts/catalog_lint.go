// catalog_lint.go — standalone script to validate a catalog bundle before it ships.
//
// Usage:
//
//	go run scripts/catalog_lint.go -catalog internal/catalog/catalog.yaml
//	go run scripts/catalog_lint.go                (checks the embedded default)
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/uia-collective/compass/internal/catalog"
)

func main() {
	path := flag.String("catalog", "", "path to a catalog bundle; empty checks the embedded default")
	strict := flag.Bool("strict", false, "treat warnings as errors")
	flag.Parse()

	var (
		cat *catalog.Catalog
		err error
	)
	if *path != "" {
		cat, err = catalog.Load(*path)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		log.Fatalf("catalog invalid: %v", err)
	}

	fmt.Printf("version:         %d\n", cat.Version)
	fmt.Printf("sdgs:            %d\n", len(cat.SDGs))
	fmt.Printf("questions:       %d\n", len(cat.Questions))
	fmt.Printf("sections:        %d\n", len(cat.Sections))
	fmt.Printf("synergy rules:   %d\n", len(cat.Rules()))
	fmt.Printf("recommendations: %d\n", len(cat.Recommendations))
	fmt.Printf("facets:          %d\n", len(cat.Facets))
	fmt.Printf("certifications:  %d\n", len(cat.Certifications))

	warnings := lint(cat)
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
	if len(warnings) > 0 && *strict {
		os.Exit(1)
	}
	fmt.Println("catalog ok")
}

// lint flags authoring gaps that validation deliberately tolerates.
func lint(cat *catalog.Catalog) []string {
	var warnings []string

	// The generic tier fallback papers over missing entries at runtime, but
	// a goal/phase pair with nothing authored is usually a mistake.
	authored := make(map[string]bool)
	for _, rec := range cat.Recommendations {
		authored[fmt.Sprintf("%d/%s", rec.SDG, rec.Phase)] = true
	}
	for _, s := range cat.SDGs {
		for _, p := range catalog.Phases() {
			if !authored[fmt.Sprintf("%d/%s", s.ID, p)] {
				warnings = append(warnings, fmt.Sprintf("sdg %d has no authored recommendations for the %s phase", s.ID, p))
			}
		}
	}

	if len(cat.Sections) > 0 {
		sectioned := make(map[string]bool)
		for _, sec := range cat.Sections {
			for _, id := range sec.Questions {
				sectioned[id] = true
			}
		}
		for _, q := range cat.Questions {
			if !sectioned[q.ID] {
				warnings = append(warnings, fmt.Sprintf("question %s appears in no section", q.ID))
			}
		}
	}

	return warnings
}
