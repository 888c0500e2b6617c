package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders [id]",
		Short: "List or inspect orders (admins see every order)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteOrders); err != nil {
				return err
			}

			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return err
				}
				order, err := c.app.Client.GetOrder(cmd.Context(), id)
				if err != nil {
					return err
				}
				return printJSON(order)
			}

			orders, err := c.app.Client.ListOrders(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(orders)
		},
	}

	var status string
	setStatus := &cobra.Command{
		Use:   "set-status <id>",
		Short: "Move an order to a new status (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteOrderStatus); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			status = strings.ToUpper(status)
			if err := c.app.Client.SetOrderStatus(cmd.Context(), id, status); err != nil {
				return err
			}
			printf("order #%d -> %s", id, status)
			return nil
		},
	}
	setStatus.Flags().StringVar(&status, "status", "", "PLACED, PAID, SHIPPED, DELIVERED or CANCELLED")
	_ = setStatus.MarkFlagRequired("status")

	cmd.AddCommand(setStatus)
	return cmd
}

func (c *CLI) reviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "List your reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteReviews); err != nil {
				return err
			}
			reviews, err := c.app.Client.ListMyReviews(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(reviews)
		},
	}

	var rating int
	var comment string
	add := &cobra.Command{
		Use:   "add <order-id>",
		Short: "Review one of your delivered orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteReviews); err != nil {
				return err
			}
			orderID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			review, err := c.app.Client.CreateReview(cmd.Context(), orderID, rating, comment)
			if err != nil {
				return err
			}
			return printJSON(review)
		},
	}
	add.Flags().IntVar(&rating, "rating", 5, "rating from 1 to 5")
	add.Flags().StringVar(&comment, "comment", "", "optional comment")

	cmd.AddCommand(add)
	return cmd
}
