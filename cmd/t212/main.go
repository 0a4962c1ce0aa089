// t212 is a thin command-line front end over the client library. It only
// does argument parsing and credential sourcing; everything interesting
// happens in pkg/sdk.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/equitybot/t212go/pkg/config"
	"github.com/equitybot/t212go/pkg/logger"
	"github.com/equitybot/t212go/pkg/ratelimit"
	"github.com/equitybot/t212go/pkg/sdk/api"
)

var (
	cfgPath string
	verbose bool

	log    *logrus.Logger
	client *api.Client
)

func main() {
	root := &cobra.Command{
		Use:           "t212",
		Short:         "Trading212 API client",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		accountCmd(),
		portfolioCmd(),
		exchangesCmd(),
		instrumentsCmd(),
		piesCmd(),
		ordersCmd(),
		historyCmd(),
		exportsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setup() error {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logCfg := cfg.LoggerConfig()
	if verbose {
		logCfg.Level = "debug"
	}
	log, err = logger.Init(logCfg)
	if err != nil {
		return err
	}

	// The published quotas are tight (some endpoints allow one call per 30s),
	// so the CLI always paces itself; --all pagination would hit 429 otherwise.
	client, err = api.NewClient(cfg.APIKey,
		api.WithHost(cfg.Host),
		api.WithLogger(log),
		api.WithThrottle(ratelimit.Defaults()),
	)
	return err
}

func fmtDec(d decimal.Decimal) string {
	return d.String()
}

func fmtDecPtr(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}
	return d.String()
}
