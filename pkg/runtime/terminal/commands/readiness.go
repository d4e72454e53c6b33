package commands

import (
	"github.com/spf13/cobra"

	"github.com/zyphery/cfo-core/pkg/runtime/terminal/export"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/insight"
	"github.com/zyphery/cfo-core/pkg/services/readiness"
)

type ReadinessCmd struct {
	companyID string
	registry  *company.Registry
	reporter  *export.Reporter
}

func NewReadinessCmd(registry *company.Registry, reporter *export.Reporter) *cobra.Command {
	rc := &ReadinessCmd{registry: registry, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Assess funding readiness for a company baseline",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.companyID, "company", "", "Company to assess")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func (rc *ReadinessCmd) run(cmd *cobra.Command, args []string) error {
	c, err := rc.registry.Get(rc.companyID)
	if err != nil {
		return err
	}

	return rc.reporter.Handle(insight.ReadinessReport(c, readiness.Assess(c.Baseline)))
}
