package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildmart/buildmart/pkg/storesdk"
)

func (c *CLI) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	var category string
	show := &cobra.Command{
		Use:   "show",
		Short: "List cart items",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteCart); err != nil {
				return err
			}
			items, err := c.app.Client.ListCart(cmd.Context(), category)
			if err != nil {
				return err
			}
			if err := printJSON(items); err != nil {
				return err
			}
			summary, err := c.app.Client.GetCartSummary(cmd.Context())
			if err != nil {
				return err
			}
			printf("%d items, subtotal %.2f", summary.Count, summary.Subtotal)
			return nil
		},
	}
	show.Flags().StringVar(&category, "category", "", "only items of this category slug")

	var qty int
	add := &cobra.Command{
		Use:   "add <material-id>",
		Short: "Add a material to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteCart); err != nil {
				return err
			}
			materialID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			item, err := c.app.Client.AddToCart(cmd.Context(), materialID, qty)
			if err != nil {
				return err
			}
			return printJSON(item)
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity to add")

	var newQty int
	update := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Set the quantity of a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteCart); err != nil {
				return err
			}
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			item, err := c.app.Client.UpdateCartItem(cmd.Context(), itemID, newQty)
			if err != nil {
				return err
			}
			return printJSON(item)
		},
	}
	update.Flags().IntVar(&newQty, "qty", 1, "new quantity")
	_ = update.MarkFlagRequired("qty")

	rm := &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteCart); err != nil {
				return err
			}
			itemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if err := c.app.Client.RemoveCartItem(cmd.Context(), itemID); err != nil {
				return err
			}
			printf("removed item %d", itemID)
			return nil
		},
	}

	cmd.AddCommand(show, add, update, rm)
	return cmd
}

func (c *CLI) checkoutCmd() *cobra.Command {
	var req storesdk.CheckoutRequest

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order from the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteCheckout); err != nil {
				return err
			}
			order, err := c.app.Client.Checkout(cmd.Context(), req)
			if err != nil {
				return err
			}
			printf("order #%d placed, total %.2f", order.ID, order.Total)
			return printJSON(order)
		},
	}

	cmd.Flags().StringVar(&req.Address.Line1, "line1", "", "address line")
	cmd.Flags().StringVar(&req.Address.City, "city", "", "city")
	cmd.Flags().StringVar(&req.Address.State, "state", "", "state")
	cmd.Flags().StringVar(&req.Address.Zip, "zip", "", "postal code")
	cmd.Flags().StringVar(&req.Address.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&req.PaymentMethod, "payment", "cod", "payment method (cod or card)")
	cmd.Flags().Float64Var(&req.DeliveryCharges, "delivery", 0, "delivery charges")
	cmd.Flags().Int64SliceVar(&req.CartItemIDs, "items", nil, "checkout only these cart item ids")
	_ = cmd.MarkFlagRequired("line1")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}
