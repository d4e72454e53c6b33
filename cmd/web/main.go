package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zyphery/cfo-core/pkg/server"
	"github.com/zyphery/cfo-core/pkg/services/company"
	"github.com/zyphery/cfo-core/pkg/services/config"
	"github.com/zyphery/cfo-core/pkg/services/credit"
	"github.com/zyphery/cfo-core/pkg/services/scoring"
	"github.com/zyphery/cfo-core/pkg/services/session"
	"github.com/zyphery/cfo-core/pkg/store/duckdb"
	"github.com/zyphery/cfo-core/pkg/store/duckdb/scenarios"
	"github.com/zyphery/cfo-core/pkg/store/duckdb/scores"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the CFO core web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the YAML config file (built-in demo companies when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	registry, err := company.NewRegistry(cfg.DomainCompanies())
	if err != nil {
		return fmt.Errorf("failed to build company registry: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{DbPath: cfg.Database.Path})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}
	defer db.Close()

	scoreStore, err := scores.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create score store: %w", err)
	}
	scenarioStore, err := scenarios.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create scenario store: %w", err)
	}

	creditSvc := credit.NewService(scoring.NewScorer(scoring.DefaultFactors()), scoreStore, db)
	sessions := session.NewManager(registry)

	logger.Info().Msgf("Registered the following companies:")
	for _, c := range registry.List() {
		logger.Info().Msgf("ID: `%s`, Name: `%s`, Industry: `%s`", c.ID, c.Name, c.Industry)
	}

	host := cfg.Server.Host
	if env := os.Getenv("SERVER_HOST"); env != "" {
		host = env
	}
	port := cfg.Server.Port
	if env := os.Getenv("SERVER_PORT"); env != "" {
		parsed, err := strconv.Atoi(env)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT: %w", err)
		}
		port = parsed
	}

	api := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, strconv.Itoa(port)),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Registry:  registry,
			Sessions:  sessions,
			Credit:    creditSvc,
			Scenarios: scenarioStore,
			Logger:    logger,
		},
	})

	return api.Start()
}
