package storesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Address is a shipping address for checkout.
type Address struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state,omitempty"`
	Zip   string `json:"zip,omitempty"`
	Phone string `json:"phone"`
}

// CheckoutRequest places an order from the current cart. CartItemIDs, when
// non-empty, checks out only those lines and leaves the rest in the cart.
type CheckoutRequest struct {
	Address         Address `json:"address"`
	CartItemIDs     []int64 `json:"cart_item_ids,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"` // "cod" or "card"
	DeliveryCharges float64 `json:"delivery_charges,omitempty"`
}

// OrderItem is a line of a placed order. Title, SKU, unit and price are
// snapshots taken at checkout time.
type OrderItem struct {
	ID        int64   `json:"id"`
	Material  int64   `json:"material"`
	Title     string  `json:"title"`
	SKU       string  `json:"sku"`
	Unit      string  `json:"unit"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
}

// Order is a placed order with its item lines.
type Order struct {
	ID              int64       `json:"id"`
	Username        string      `json:"username,omitempty"`
	Address         string      `json:"address"`
	Status          string      `json:"status"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	DeliveryCharges float64     `json:"delivery_charges"`
	Total           float64     `json:"total"`
	PaymentMethod   string      `json:"payment_method"`
	Items           []OrderItem `json:"items,omitempty"`
	ItemCount       int         `json:"item_count,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Order lifecycle statuses.
const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusPaid      = "PAID"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Checkout places an order from the cart. The backend validates stock,
// snapshots effective role-based prices, and clears the checked-out lines.
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (*Order, error) {
	var order Order
	if err := c.Post(ctx, "/orders/checkout/", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders fetches orders: the caller's own, or every order for admins.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.Get(ctx, "/orders/", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches one order with its items.
func (c *Client) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var order Order
	if err := c.Get(ctx, fmt.Sprintf("/orders/%d/", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// SetOrderStatus moves an order to a new lifecycle status. Admin only
// server-side.
func (c *Client) SetOrderStatus(ctx context.Context, id int64, status string) error {
	body := struct {
		Status string `json:"status"`
	}{Status: status}
	path := fmt.Sprintf("/orders/%d/status/", id)
	return c.Do(ctx, http.MethodPatch, path, body, nil)
}

// Review is a 1-5 star rating attached to a delivered order.
type Review struct {
	ID        int64     `json:"id"`
	Order     int64     `json:"order"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListMyReviews fetches the caller's reviews.
func (c *Client) ListMyReviews(ctx context.Context) ([]Review, error) {
	var reviews []Review
	if err := c.Get(ctx, "/reviews/mine/", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CreateReview rates one of the caller's own orders. One review per order.
func (c *Client) CreateReview(ctx context.Context, orderID int64, rating int, comment string) (*Review, error) {
	body := struct {
		Order   int64  `json:"order"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment,omitempty"`
	}{Order: orderID, Rating: rating, Comment: comment}

	var review Review
	if err := c.Post(ctx, "/reviews/", body, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// SalesRow is one day of the sales report.
type SalesRow struct {
	Day     string  `json:"day"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// SalesReport fetches per-day order counts and revenue for a date range.
// Dates are "YYYY-MM-DD"; empty bounds are open-ended. Admin only
// server-side.
func (c *Client) SalesReport(ctx context.Context, from, to string) ([]SalesRow, error) {
	q := url.Values{}
	if from != "" {
		q.Set("from", from)
	}
	if to != "" {
		q.Set("to", to)
	}
	path := "/reports/sales"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var rows []SalesRow
	if err := c.Get(ctx, path, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
