package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/inventory-rest/internal/client"
)

const defaultServer = "http://localhost:8080"

type globalOptions struct {
	server  string
	token   string
	output  string
	timeout time.Duration
}

func (o *globalOptions) clientOptions() []client.Option {
	opts := []client.Option{client.WithTimeout(o.timeout)}
	if o.token != "" {
		opts = append(opts, client.WithBearerToken(o.token))
	}
	return opts
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:           "inventoryctl",
		Short:         "Manage products and records of an inventory server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := newPrinter(cmd.OutOrStdout(), opts.output)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.server, "server", envOr("INVENTORY_SERVER", defaultServer), "Inventory server base URL")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("INVENTORY_TOKEN"), "Bearer token for mutating commands")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", formatTable, "Output format: table, json or yaml")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP request timeout")

	cmd.AddCommand(newProductsCmd(opts))
	cmd.AddCommand(newRecordsCmd(opts))
	cmd.AddCommand(newLoginCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
