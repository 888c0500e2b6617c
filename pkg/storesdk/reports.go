package storesdk

import "context"

// DashboardMetrics is the admin dashboard headline feed.
type DashboardMetrics struct {
	OrdersToday     int     `json:"orders_today"`
	RevenueToday    float64 `json:"revenue_today"`
	PendingPayments int     `json:"pending_payments"`
	LowStock        int     `json:"low_stock"`
}

// RevenuePoint is one day of the admin revenue series.
type RevenuePoint struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// GetDashboardMetrics fetches today's headline numbers. Admin only
// server-side.
func (c *Client) GetDashboardMetrics(ctx context.Context) (*DashboardMetrics, error) {
	var metrics DashboardMetrics
	if err := c.Get(ctx, "/admin/metrics/", &metrics); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// ListRecentOrders fetches the ten most recent orders across all users.
func (c *Client) ListRecentOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.Get(ctx, "/admin/recent-orders/", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListLowStockMaterials fetches materials at or below their low-stock
// threshold, lowest stock first.
func (c *Client) ListLowStockMaterials(ctx context.Context) ([]Material, error) {
	var materials []Material
	if err := c.Get(ctx, "/admin/low-stock/", &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// RevenueSeries fetches the per-day revenue series for the dashboard chart.
func (c *Client) RevenueSeries(ctx context.Context) ([]RevenuePoint, error) {
	var points []RevenuePoint
	if err := c.Get(ctx, "/admin/revenue-series/", &points); err != nil {
		return nil, err
	}
	return points, nil
}
