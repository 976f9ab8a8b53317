// designcheck validates a design JSON file from the command line and
// prints a human-readable report. Useful for poking at rule thresholds
// without running the HTTP server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"service-validation/internal/domain"
	"service-validation/internal/interfaces"
	pkgvalidation "service-validation/pkg/validation"
)

func main() {
	buildingType := flag.String("type", "residential", "building type (residential, commercial)")
	region := flag.String("region", "TR", "jurisdiction region code")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: designcheck [-type residential] [-region TR] <design.json>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read design: %v\n", err)
		os.Exit(1)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		fmt.Fprintf(os.Stderr, "cannot parse design: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("   DESIGN VALIDATION REPORT - %s / %s\n", *region, *buildingType)
	fmt.Println(strings.Repeat("=", 60))

	quick := pkgvalidation.ValidateDesign(payload, *buildingType)
	fmt.Println("\n[1. QUICK CHECKS]")
	if len(quick.Errors) == 0 {
		fmt.Println("   no violations")
	}
	for _, code := range quick.Errors {
		fmt.Printf("   FAIL %s\n", code)
	}

	res := interfaces.ValidateDesign(payload, *buildingType, *region, nil)

	fmt.Println("\n[2. RULE VIOLATIONS]")
	if len(res.Errors) == 0 {
		fmt.Println("   none")
	}
	for _, e := range res.Errors {
		fmt.Printf("   ERROR %s\n", e)
	}

	fmt.Println("\n[3. ADVISORIES]")
	if len(res.Warnings) == 0 {
		fmt.Println("   none")
	}
	for _, w := range res.Warnings {
		fmt.Printf("   WARN  %s\n", w)
	}

	fmt.Println("\n[4. VERDICT]")
	fmt.Printf("   Status:     %s\n", res.Status)
	fmt.Printf("   Confidence: %.2f\n", res.ConfidenceScore)
	if code, ok := res.Results["code"]; ok && code.ComplianceScore != nil {
		fmt.Printf("   Compliance: %.2f\n", *code.ComplianceScore)
	}
	fmt.Println(strings.Repeat("=", 60))

	if res.Status == domain.StatusRejected {
		os.Exit(1)
	}
}
