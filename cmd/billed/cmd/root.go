// Package cmd provides the billed CLI commands.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"billed.app/client/config"
	"billed.app/client/diag"
	"billed.app/client/routes"
	"billed.app/client/session"
	"billed.app/client/store"
)

var (
	cfgFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "billed",
	Short: "Submit and follow expense bills",
	Long: `billed lists the expense bills of the signed-in employee and submits
new ones with their receipt.

Example:
  billed bills
  billed new --file ticket.jpg --name taxi --date 2023-01-01 --amount 200`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(diag.New(os.Stderr, debug))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(billsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(typesCmd)
}

// app is what every command needs to talk to the bills service.
type app struct {
	cfg     *config.Config
	session session.Session
	store   store.BillStore
	logger  *slog.Logger
}

func loadApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Debug && !debug {
		slog.SetDefault(diag.New(os.Stderr, true))
	}

	s, err := session.Load(cfg.SessionFile)
	if err != nil {
		return nil, err
	}
	if routes.Home(s) != routes.Bills {
		return nil, fmt.Errorf("an employee session is required, %s has type %q", cfg.SessionFile, s.Type)
	}

	logger := slog.Default()
	logger.Debug("session loaded", "email", s.Email, "api_url", cfg.APIURL)

	return &app{
		cfg:     cfg,
		session: s,
		store:   store.NewHTTPStore(cfg.APIURL, s.Email, cfg.HTTPTimeout),
		logger:  logger,
	}, nil
}

// navigator renders the bill list when a handler goes back to it.
func (a *app) navigator(cmd *cobra.Command) routes.Navigator {
	return routes.NavigatorFunc(func(path string) {
		a.logger.Debug("navigate", "path", path)
		switch path {
		case routes.Bills:
			if err := showBills(cmd, a); err != nil {
				a.logger.Error("failed to show bills", "error", err)
			}
		case routes.NewBill:
			fmt.Fprintln(cmd.OutOrStdout(), "Nouvelle note de frais: billed new --file <justificatif> ...")
		default:
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
	})
}
