package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/inventory-rest/internal/client"
)

func newLoginCmd(opts *globalOptions) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a bearer token for mutating commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := client.Login(cmd.Context(), opts.server, username, password, client.WithTimeout(opts.timeout))
			if err != nil {
				return err
			}

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			if p.format != formatTable {
				return p.print(map[string]string{"token": token}, nil, nil)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "User name")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
