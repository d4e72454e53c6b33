package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zyphery/cfo-core/pkg/runtime/terminal/commands"
	"github.com/zyphery/cfo-core/pkg/runtime/terminal/export"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/scoring"
)

// CLI represents the command-line interface
type CLI struct {
	registry *company.Registry
	scorer   *scoring.Scorer
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry *company.Registry
	Scorer   *scoring.Scorer
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		registry: opts.Registry,
		scorer:   opts.Scorer,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cfo",
		Short: "Financial scenario and scoring tool",
	}

	cmd.AddCommand(commands.NewForecastCmd(cli.registry, cli.reporter))
	cmd.AddCommand(commands.NewScoreCmd(cli.registry, cli.scorer, cli.reporter))
	cmd.AddCommand(commands.NewReadinessCmd(cli.registry, cli.reporter))

	return cmd
}
