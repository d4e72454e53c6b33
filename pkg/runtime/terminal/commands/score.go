package commands

import (
	"github.com/spf13/cobra"

	"github.com/zyphery/cfo-core/pkg/runtime/terminal/export"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/insight"
	"github.com/zyphery/cfo-core/pkg/services/scoring"
)

type ScoreCmd struct {
	companyID string
	registry  *company.Registry
	scorer    *scoring.Scorer
	reporter  *export.Reporter
}

func NewScoreCmd(registry *company.Registry, scorer *scoring.Scorer, reporter *export.Reporter) *cobra.Command {
	sc := &ScoreCmd{registry: registry, scorer: scorer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute the credit score for a company baseline",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.companyID, "company", "", "Company to score")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}

func (sc *ScoreCmd) run(cmd *cobra.Command, args []string) error {
	c, err := sc.registry.Get(sc.companyID)
	if err != nil {
		return err
	}

	score := sc.scorer.Score(c.Baseline, c.Baseline)
	return sc.reporter.Handle(insight.ScoreReport(c, score))
}
