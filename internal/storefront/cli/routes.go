package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/buildmart/buildmart/pkg/storesdk"
)

// Route names every protected surface of the CLI. Each command declares its
// route; the access rule is enforced before the command body runs.
type Route string

const (
	RouteDashboard    Route = "dashboard"
	RouteCatalog      Route = "catalog"
	RouteCart         Route = "cart"
	RouteCheckout     Route = "checkout"
	RouteOrders       Route = "orders"
	RouteOrderStatus  Route = "orders/status"
	RouteInventory    Route = "inventory"
	RouteBulkRequests Route = "bulk-requests"
	RouteBids         Route = "bids"
	RouteReviews      Route = "reviews"
	RouteSuppliers    Route = "suppliers"
	RouteReports      Route = "reports"
)

// routeRules is the declarative role table for every protected route. An
// empty rule admits any authenticated user. Mirrors the storefront's
// navigation: buying surfaces for buyer roles, bidding for suppliers,
// inventory for wholesalers and admins, reporting for admins.
var routeRules = map[Route]storesdk.RouteRule{
	RouteDashboard: {Roles: []storesdk.Role{storesdk.RoleAdmin}},
	RouteCatalog:   {},
	RouteCart: {Roles: []storesdk.Role{
		storesdk.RoleCustomer, storesdk.RoleRetailer, storesdk.RoleWholesaler,
	}},
	RouteCheckout: {Roles: []storesdk.Role{
		storesdk.RoleCustomer, storesdk.RoleRetailer, storesdk.RoleWholesaler,
	}},
	RouteOrders:      {},
	RouteOrderStatus: {Roles: []storesdk.Role{storesdk.RoleAdmin}},
	RouteInventory: {Roles: []storesdk.Role{
		storesdk.RoleAdmin, storesdk.RoleWholesaler,
	}},
	RouteBulkRequests: {Roles: []storesdk.Role{
		storesdk.RoleCustomer, storesdk.RoleRetailer, storesdk.RoleWholesaler, storesdk.RoleAdmin,
	}},
	RouteBids: {Roles: []storesdk.Role{
		storesdk.RoleSupplier, storesdk.RoleAdmin,
	}},
	RouteReviews:   {},
	RouteSuppliers: {},
	RouteReports:   {Roles: []storesdk.Role{storesdk.RoleAdmin}},
}

// ErrNotLoggedIn is the CLI rendering of a redirect-to-login decision.
var ErrNotLoggedIn = errors.New("not logged in; run `storefront login`")

// requireRoute derives the session from stored credentials and enforces the
// route's access rule. Denials map the gate's redirect decisions onto CLI
// errors: unauthenticated points at login, under-privileged points at the
// default landing.
func (c *CLI) requireRoute(ctx context.Context, route Route) error {
	rule, ok := routeRules[route]
	if !ok {
		return fmt.Errorf("no access rule declared for route %q", route)
	}

	c.app.Session.Reload(ctx)

	switch storesdk.Authorize(c.app.Session.Snapshot(), rule) {
	case storesdk.DecisionAllow:
		return nil
	case storesdk.DecisionRedirectLogin:
		return ErrNotLoggedIn
	case storesdk.DecisionRedirectHome:
		user := c.app.Session.Snapshot().User
		return fmt.Errorf("role %s may not access %s; run `storefront orders` for your landing view", user.Role, route)
	default:
		return fmt.Errorf("access check for %s still pending", route)
	}
}
