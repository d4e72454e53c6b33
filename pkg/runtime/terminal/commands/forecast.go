package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zyphery/cfo-core/pkg/models/domain"
	"github.com/zyphery/cfo-core/pkg/runtime/terminal/export"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/insight"
	"github.com/zyphery/cfo-core/pkg/services/scenario"
)

type ForecastCmd struct {
	companyID     string
	spendChange   float64
	hiringRate    float64
	revenueGrowth float64
	registry      *company.Registry
	reporter      *export.Reporter
}

func NewForecastCmd(registry *company.Registry, reporter *export.Reporter) *cobra.Command {
	fc := &ForecastCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project a what-if scenario",
		RunE:  fc.run,
	}

	// Define flags
	cmd.Flags().StringVar(&fc.companyID, "company", "", "Company to project")
	cmd.Flags().Float64Var(&fc.spendChange, "spend-change", 0, "Spend change in percent")
	cmd.Flags().Float64Var(&fc.hiringRate, "hiring-rate", 0, "Headcount units to add")
	cmd.Flags().Float64Var(&fc.revenueGrowth, "revenue-growth", 0, "Revenue growth delta in percent")

	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func (fc *ForecastCmd) run(cmd *cobra.Command, args []string) error {
	c, err := fc.registry.Get(fc.companyID)
	if err != nil {
		return err
	}

	params := domain.ScenarioParams{
		SpendChangePct:   fc.spendChange,
		HiringRate:       fc.hiringRate,
		RevenueGrowthPct: fc.revenueGrowth,
	}
	if err := scenario.ValidateParams(params); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	projected := scenario.Project(c.Baseline, params)
	return fc.reporter.Handle(insight.ForecastReport(c, params, c.Baseline, projected))
}
