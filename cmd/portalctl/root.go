package main

import (
	"context"
	"fmt"
	"os"

	"alu_portal/internal/app"
	"alu_portal/internal/infrastructure/config"

	"github.com/spf13/cobra"
)

// containerOpener builds the backends a command needs. Tests swap it for one
// that returns mocked use cases.
type containerOpener func(ctx context.Context) (*app.Container, error)

func openContainer(ctx context.Context) (*app.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	// the CLI never reads session carts or places orders
	cfg.Cart.Backend = config.CartBackendMemory
	cfg.SagaLogPath = ""
	return app.New(ctx, cfg)
}

func newRootCmd(open containerOpener) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "portalctl",
		Short:         "Operate the aluminum ordering portal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				return os.Setenv("CONFIG_FILE", configFile)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file (overrides CONFIG_FILE)")

	root.AddCommand(priceCmd())
	root.AddCommand(ordersCmd(open))
	root.AddCommand(docsCmd(open))
	root.AddCommand(dashboardCmd(open))
	return root
}

// withContainer opens the backends for the duration of fn.
func withContainer(cmd *cobra.Command, open containerOpener, fn func(c *app.Container) error) error {
	c, err := open(cmd.Context())
	if err != nil {
		return fmt.Errorf("open backends: %w", err)
	}
	defer func() { _ = c.Close() }()
	return fn(c)
}
