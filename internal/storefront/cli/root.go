// Package cli implements the storefront command tree. Every command that
// touches a protected backend surface declares a route and is gated through
// the SDK's access check before running.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/buildmart/buildmart/internal/storefront/app"
)

// CLI binds the command tree to an initialized application.
type CLI struct {
	app *app.App
}

// NewRootCmd builds the storefront command tree.
func NewRootCmd(a *app.App) *cobra.Command {
	c := &CLI{app: a}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "BuildMart construction materials storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.registerCmd(),
		c.whoamiCmd(),
		c.healthCmd(),
		c.catalogCmd(),
		c.categoriesCmd(),
		c.cartCmd(),
		c.checkoutCmd(),
		c.ordersCmd(),
		c.reviewsCmd(),
		c.bulkRequestsCmd(),
		c.bidsCmd(),
		c.inventoryCmd(),
		c.materialsCmd(),
		c.suppliersCmd(),
		c.reportsCmd(),
		c.dashboardCmd(),
	)

	return root
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printf(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}
