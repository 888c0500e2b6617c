package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (c *CLI) bulkRequestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk-requests",
		Short: "List your bulk requests (suppliers see open ones)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteBulkRequests); err != nil {
				return err
			}
			reqs, err := c.app.Client.ListBulkRequests(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(reqs)
		},
	}

	var qty int
	var deadline string
	create := &cobra.Command{
		Use:   "new <material-id>",
		Short: "Open a call for supplier bids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteBulkRequests); err != nil {
				return err
			}
			materialID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			req, err := c.app.Client.CreateBulkRequest(cmd.Context(), materialID, qty, deadline)
			if err != nil {
				return err
			}
			return printJSON(req)
		},
	}
	create.Flags().IntVar(&qty, "qty", 0, "quantity requested")
	create.Flags().StringVar(&deadline, "deadline", "", "bid deadline (YYYY-MM-DD)")
	_ = create.MarkFlagRequired("qty")

	closeCmd := &cobra.Command{
		Use:   "close <id>",
		Short: "Close a bulk request without accepting a bid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteBulkRequests); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if err := c.app.Client.CloseBulkRequest(cmd.Context(), id); err != nil {
				return err
			}
			printf("bulk request #%d closed", id)
			return nil
		},
	}

	cmd.AddCommand(create, closeCmd)
	return cmd
}

func (c *CLI) bidsCmd() *cobra.Command {
	var bulkRequestID int64

	cmd := &cobra.Command{
		Use:   "bids",
		Short: "List bids (suppliers see their own)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteBids); err != nil {
				return err
			}
			bids, err := c.app.Client.ListBids(cmd.Context(), bulkRequestID)
			if err != nil {
				return err
			}
			return printJSON(bids)
		},
	}
	cmd.Flags().Int64Var(&bulkRequestID, "request", 0, "only bids on this bulk request")

	var unitPrice float64
	var note string
	place := &cobra.Command{
		Use:   "new <bulk-request-id>",
		Short: "Place a bid on an open bulk request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteBids); err != nil {
				return err
			}
			requestID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			bid, err := c.app.Client.CreateBid(cmd.Context(), requestID, unitPrice, note)
			if err != nil {
				return err
			}
			return printJSON(bid)
		},
	}
	place.Flags().Float64Var(&unitPrice, "price", 0, "offered unit price")
	place.Flags().StringVar(&note, "note", "", "optional note to the buyer")
	_ = place.MarkFlagRequired("price")

	accept := &cobra.Command{
		Use:   "accept <bid-id>",
		Short: "Accept a bid on your bulk request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Accepting is a buyer action on the bulk-request surface.
			if err := c.requireRoute(cmd.Context(), RouteBulkRequests); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if err := c.app.Client.AcceptBid(cmd.Context(), id); err != nil {
				return err
			}
			printf("bid #%d accepted", id)
			return nil
		},
	}

	reject := &cobra.Command{
		Use:   "reject <bid-id>",
		Short: "Reject a bid on your bulk request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteBulkRequests); err != nil {
				return err
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			if err := c.app.Client.RejectBid(cmd.Context(), id); err != nil {
				return err
			}
			printf("bid #%d rejected", id)
			return nil
		},
	}

	cmd.AddCommand(place, accept, reject)
	return cmd
}
