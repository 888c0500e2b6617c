package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/buildmart/buildmart/pkg/storesdk"
)

var allRoutes = []Route{
	RouteDashboard,
	RouteCatalog,
	RouteCart,
	RouteCheckout,
	RouteOrders,
	RouteOrderStatus,
	RouteInventory,
	RouteBulkRequests,
	RouteBids,
	RouteReviews,
	RouteSuppliers,
	RouteReports,
}

func TestRouteRulesCoverEveryRoute(t *testing.T) {
	t.Parallel()

	require.Len(t, routeRules, len(allRoutes))
	for _, route := range allRoutes {
		_, ok := routeRules[route]
		require.True(t, ok, "route %q has no access rule", route)
	}
}

func TestRouteRuleRolesAreValid(t *testing.T) {
	t.Parallel()

	for route, rule := range routeRules {
		for _, role := range rule.Roles {
			require.True(t, role.Valid(), "route %q lists unknown role %q", route, role)
		}
	}
}

func TestAdminOnlyRoutes(t *testing.T) {
	t.Parallel()

	for _, route := range []Route{RouteDashboard, RouteOrderStatus, RouteReports} {
		rule := routeRules[route]
		require.Equal(t, []storesdk.Role{storesdk.RoleAdmin}, rule.Roles, "route %q", route)
	}
}

func TestBuyingRoutesExcludeSuppliers(t *testing.T) {
	t.Parallel()

	for _, route := range []Route{RouteCart, RouteCheckout} {
		rule := routeRules[route]
		require.NotEmpty(t, rule.Roles, "route %q must not admit every role", route)
		for _, role := range rule.Roles {
			require.NotEqual(t, storesdk.RoleSupplier, role, "route %q", route)
		}
	}
}
