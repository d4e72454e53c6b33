package main

import (
	"fmt"
	"os"

	"github.com/zyphery/cfo-core/pkg/runtime/terminal"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/config"
	"github.com/zyphery/cfo-core/pkg/services/scoring"
)

func main() {
	cfgPath := os.Getenv("CFO_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	registry, err := company.NewRegistry(cfg.DomainCompanies())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: registry,
		Scorer:   scoring.NewScorer(scoring.DefaultFactors()),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
