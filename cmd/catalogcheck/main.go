// Package main is the catalog validation CLI. It runs the full validation
// suite against the built-in catalog or a set of YAML directories and prints
// a human-readable report, exiting non-zero when errors are found.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apilooter/gateway/internal/catalog"
	"github.com/apilooter/gateway/internal/policy"
	"github.com/apilooter/gateway/model"
)

func main() {
	os.Exit(run())
}

func run() int {
	var dirs stringList
	flag.Var(&dirs, "dir", "catalog YAML directory (repeatable; omit to check the built-in catalog)")
	flag.Parse()

	var providers []model.Provider
	if len(dirs) == 0 {
		providers = catalog.Builtin()
		fmt.Println("Checking built-in catalog")
	} else {
		loader := catalog.NewLoader()
		loaded, err := loader.LoadAll(dirs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "catalog load failed: %v\n", err)
			return 1
		}
		providers = loaded
		fmt.Printf("Checking %s\n", strings.Join(dirs, ", "))
	}
	fmt.Printf("Providers: %d\n\n", len(providers))

	report := catalog.NewValidator().Validate(providers)

	if len(report.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", len(report.Warnings))
		for _, w := range report.Warnings {
			fmt.Printf("  %s\n", w.String())
		}
		fmt.Println()
	}

	if len(report.Errors) > 0 {
		fmt.Printf("Errors (%d):\n", len(report.Errors))
		for _, e := range report.Errors {
			fmt.Printf("  %s\n", e.String())
		}
		fmt.Println()
	}

	fmt.Println("Domain allow-list:")
	for _, host := range policy.AllowedHosts(providers) {
		fmt.Printf("  %s\n", host)
	}
	fmt.Println()

	if !report.OK() {
		fmt.Println("FAIL")
		return 1
	}
	fmt.Println("PASS")
	return 0
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
