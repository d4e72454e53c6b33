package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/zyphery/cfo-core/pkg/models/domain"
)

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type Database struct {
	Path string `mapstructure:"path"`
}

type Expenses struct {
	Engineering    float64 `mapstructure:"engineering"`
	Marketing      float64 `mapstructure:"marketing"`
	Sales          float64 `mapstructure:"sales"`
	Operations     float64 `mapstructure:"operations"`
	Infrastructure float64 `mapstructure:"infrastructure"`
}

type Baseline struct {
	MRR      float64  `mapstructure:"mrr"`
	Burn     float64  `mapstructure:"burn"`
	Runway   float64  `mapstructure:"runway"`
	Cash     float64  `mapstructure:"cash"`
	Growth   float64  `mapstructure:"growth"`
	Expenses Expenses `mapstructure:"expenses"`
}

type Company struct {
	ID       string   `mapstructure:"id"`
	Name     string   `mapstructure:"name"`
	Industry string   `mapstructure:"industry"`
	Mock     bool     `mapstructure:"mock"`
	Baseline Baseline `mapstructure:"baseline"`
}

type Config struct {
	Server    Server    `mapstructure:"server"`
	Database  Database  `mapstructure:"database"`
	Companies []Company `mapstructure:"companies"`
}

// Load reads a YAML config file. With an empty path, defaults apply and the
// built-in company fixtures are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8005)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.path", "cfo-core.db")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// DomainCompanies maps configured companies to domain models. MRR doubles as
// revenue by construction.
func (c *Config) DomainCompanies() []domain.Company {
	out := make([]domain.Company, 0, len(c.Companies))
	for _, cc := range c.Companies {
		out = append(out, domain.Company{
			ID:       cc.ID,
			Name:     cc.Name,
			Industry: cc.Industry,
			Mock:     cc.Mock,
			Baseline: domain.FinancialSnapshot{
				MRR:     cc.Baseline.MRR,
				Revenue: cc.Baseline.MRR,
				Burn:    cc.Baseline.Burn,
				Runway:  cc.Baseline.Runway,
				Cash:    cc.Baseline.Cash,
				Growth:  cc.Baseline.Growth,
				Expenses: domain.ExpenseBreakdown{
					Engineering:    cc.Baseline.Expenses.Engineering,
					Marketing:      cc.Baseline.Expenses.Marketing,
					Sales:          cc.Baseline.Expenses.Sales,
					Operations:     cc.Baseline.Expenses.Operations,
					Infrastructure: cc.Baseline.Expenses.Infrastructure,
				},
			},
		})
	}
	return out
}
