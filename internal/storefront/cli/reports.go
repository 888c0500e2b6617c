package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) reportsCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Per-day sales report for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteReports); err != nil {
				return err
			}
			rows, err := c.app.Client.SalesReport(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			return printJSON(rows)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "end date (YYYY-MM-DD)")
	return cmd
}

func (c *CLI) dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Admin dashboard headline metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteDashboard); err != nil {
				return err
			}
			metrics, err := c.app.Client.GetDashboardMetrics(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(metrics)
		},
	}

	recent := &cobra.Command{
		Use:   "recent",
		Short: "Ten most recent orders across all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteDashboard); err != nil {
				return err
			}
			orders, err := c.app.Client.ListRecentOrders(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(orders)
		},
	}

	lowStock := &cobra.Command{
		Use:   "low-stock",
		Short: "Materials at or below their low-stock threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteDashboard); err != nil {
				return err
			}
			materials, err := c.app.Client.ListLowStockMaterials(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(materials)
		},
	}

	revenue := &cobra.Command{
		Use:   "revenue",
		Short: "Per-day revenue series",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireRoute(cmd.Context(), RouteDashboard); err != nil {
				return err
			}
			points, err := c.app.Client.RevenueSeries(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(points)
		},
	}

	cmd.AddCommand(recent, lowStock, revenue)
	return cmd
}
