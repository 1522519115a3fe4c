package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/inventory-rest/internal/client"
	"github.com/rogerio-castellano/inventory-rest/internal/models"
)

func newProductsCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage products",
	}
	cmd.AddCommand(
		newProductsListCmd(opts),
		newProductsGetCmd(opts),
		newProductsCreateCmd(opts),
		newProductsUpdateCmd(opts),
		newProductsDeleteCmd(opts),
	)
	return cmd
}

func productService(opts *globalOptions) (*client.ProductService, error) {
	return client.NewProductService(opts.server, opts.clientOptions()...)
}

func printProducts(p *printer, products []models.Product) error {
	rows := make([][]string, 0, len(products))
	for _, product := range products {
		rows = append(rows, []string{idString(product.ID), product.Name, string(product.Type)})
	}
	return p.print(products, []string{"ID", "NAME", "TYPE"}, rows)
}

func parseTypes(values []string) ([]models.ProductType, error) {
	types := make([]models.ProductType, 0, len(values))
	for _, v := range values {
		t, err := models.ParseProductType(v)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func newProductsListCmd(opts *globalOptions) *cobra.Command {
	var types []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally filtered by type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := parseTypes(types)
			if err != nil {
				return err
			}
			svc, err := productService(opts)
			if err != nil {
				return err
			}

			var products []models.Product
			if len(filter) == 0 {
				products, err = svc.ListAll(cmd.Context())
			} else {
				products, err = svc.ListByTypes(cmd.Context(), filter...)
			}
			if err != nil {
				return err
			}

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			return printProducts(p, products)
		},
	}
	cmd.Flags().StringSliceVar(&types, "type", nil, "Product type filter (repeatable)")
	return cmd
}

func newProductsGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, err := productService(opts)
			if err != nil {
				return err
			}
			product, err := svc.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			return p.print(product, []string{"ID", "NAME", "TYPE"},
				[][]string{{idString(product.ID), product.Name, string(product.Type)}})
		},
	}
}

type productFlags struct {
	name  string
	ptype string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Product name")
	cmd.Flags().StringVar(&f.ptype, "type", string(models.ProductStandard), "Product type")
	_ = cmd.MarkFlagRequired("name")
}

func (f *productFlags) product() (models.Product, error) {
	t, err := models.ParseProductType(f.ptype)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{Name: f.name, Type: t}, nil
}

func newProductsCreateCmd(opts *globalOptions) *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := flags.product()
			if err != nil {
				return err
			}
			svc, err := productService(opts)
			if err != nil {
				return err
			}
			id, err := svc.Create(cmd.Context(), product)
			if err != nil {
				return err
			}
			product.ID = models.IntPtr(id)

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			if p.format != formatTable {
				return p.print(product, nil, nil)
			}
			return p.message("created product %d", id)
		},
	}
	flags.register(cmd)
	return cmd
}

func newProductsUpdateCmd(opts *globalOptions) *cobra.Command {
	var flags productFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			product, err := flags.product()
			if err != nil {
				return err
			}
			product.ID = models.IntPtr(id)

			svc, err := productService(opts)
			if err != nil {
				return err
			}
			if err := svc.Update(cmd.Context(), product); err != nil {
				return err
			}

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			return p.message("updated product %d", id)
		},
	}
	flags.register(cmd)
	return cmd
}

func newProductsDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			svc, err := productService(opts)
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), models.Product{ID: models.IntPtr(id)}); err != nil {
				return err
			}

			p, _ := newPrinter(cmd.OutOrStdout(), opts.output)
			return p.message("deleted product %d", id)
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func idString(id *int) string {
	if id == nil {
		return "-"
	}
	return strconv.Itoa(*id)
}
