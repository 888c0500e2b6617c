package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildmart/buildmart/pkg/storesdk"
)

func (c *CLI) inventoryCmd() *cobra.Command {
	var openAlerts bool

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "List materials with stock levels and price tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteInventory); err != nil {
				return err
			}

			if openAlerts {
				alerts, err := c.app.Client.ListStockAlerts(cmd.Context(), true)
				if err != nil {
					return err
				}
				return printJSON(alerts)
			}

			materials, err := c.app.Client.ListMaterials(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(materials)
		},
	}

	cmd.Flags().BoolVar(&openAlerts, "alerts", false, "show open low-stock alerts instead")
	return cmd
}

func (c *CLI) materialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Manage inventory materials",
	}

	var in storesdk.MaterialInput
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a material",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteInventory); err != nil {
				return err
			}
			in.Unit = strings.ToUpper(in.Unit)
			material, err := c.app.Client.CreateMaterial(cmd.Context(), in)
			if err != nil {
				return err
			}
			return printJSON(material)
		},
	}
	add.Flags().StringVar(&in.Title, "title", "", "material title")
	add.Flags().StringVar(&in.SKU, "sku", "", "unique SKU")
	add.Flags().Int64Var(&in.Category, "category", 0, "category id")
	add.Flags().StringVar(&in.Unit, "unit", "PCS", "unit: BAG, TON, PCS or PKG")
	add.Flags().IntVar(&in.StockQty, "stock", 0, "initial stock quantity")
	add.Flags().IntVar(&in.MinStock, "min-stock", 0, "low-stock threshold")
	add.Flags().StringVar(&in.Description, "description", "", "description")
	_ = add.MarkFlagRequired("title")
	_ = add.MarkFlagRequired("sku")
	_ = add.MarkFlagRequired("category")

	var stock int
	setStock := &cobra.Command{
		Use:   "set-stock <material-id>",
		Short: "Set a material's stock quantity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteInventory); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			material, err := c.app.Client.UpdateMaterial(cmd.Context(), id, map[string]any{"stock_qty": stock})
			if err != nil {
				return err
			}
			return printJSON(material)
		},
	}
	setStock.Flags().IntVar(&stock, "qty", 0, "new stock quantity")
	_ = setStock.MarkFlagRequired("qty")

	var tierType string
	var price float64
	setPrice := &cobra.Command{
		Use:   "set-price <material-id>",
		Short: "Set a material's price for one tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteInventory); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			tier, err := c.app.Client.SetPriceTier(cmd.Context(), id, strings.ToUpper(tierType), price)
			if err != nil {
				return err
			}
			return printJSON(tier)
		},
	}
	setPrice.Flags().StringVar(&tierType, "tier", "RETAIL", "RETAIL or WHOLESALE")
	setPrice.Flags().Float64Var(&price, "price", 0, "price")
	_ = setPrice.MarkFlagRequired("price")

	rm := &cobra.Command{
		Use:   "rm <material-id>",
		Short: "Delete a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteInventory); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if err := c.app.Client.DeleteMaterial(cmd.Context(), id); err != nil {
				return err
			}
			printf("material %d deleted", id)
			return nil
		},
	}

	cmd.AddCommand(add, setStock, setPrice, rm)
	return cmd
}
