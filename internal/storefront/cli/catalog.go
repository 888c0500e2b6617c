package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildmart/buildmart/pkg/storesdk"
)

func (c *CLI) catalogCmd() *cobra.Command {
	var filter storesdk.CatalogFilter

	cmd := &cobra.Command{
		Use:   "catalog [id]",
		Short: "Browse the role-priced catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteCatalog); err != nil {
				return err
			}

			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
				item, err := c.app.Client.GetCatalogItem(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(item)
			}

			items, err := c.app.Client.ListCatalog(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(items)
		},
	}

	cmd.Flags().StringVarP(&filter.Search, "search", "q", "", "search title and SKU")
	cmd.Flags().StringVar(&filter.Category, "category", "", "filter by category slug")
	cmd.Flags().StringVar(&filter.Ordering, "order", "", "ordering key, e.g. title or -price")
	return cmd
}

func (c *CLI) categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteCatalog); err != nil {
				return err
			}
			cats, err := c.app.Client.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cats)
		},
	}
}

func (c *CLI) suppliersCmd() *cobra.Command {
	var materialID int64

	cmd := &cobra.Command{
		Use:   "suppliers [id]",
		Short: "List suppliers and sourcing links",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteSuppliers); err != nil {
				return err
			}

			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
				supplier, err := c.app.Client.GetSupplier(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(supplier)
			}

			if materialID != 0 {
				links, err := c.app.Client.ListMaterialSuppliers(cmd.Context(), materialID)
				if err != nil {
					return err
				}
				return printJSON(links)
			}

			suppliers, err := c.app.Client.ListSuppliers(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(suppliers)
		},
	}

	cmd.Flags().Int64Var(&materialID, "material", 0, "show sourcing links for a material")
	return cmd
}
