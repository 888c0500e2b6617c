package storesdk

import (
	"context"
	"fmt"
	"net/http"
)

// CartItem is one line of the current user's cart. Title, SKU and pricing
// come denormalised from the material so the cart renders without extra
// lookups.
type CartItem struct {
	ID            int64   `json:"id"`
	Material      int64   `json:"material"`
	MaterialTitle string  `json:"material_title"`
	MaterialSKU   string  `json:"material_sku"`
	Unit          string  `json:"unit"`
	Qty           int     `json:"qty"`
	Price         float64 `json:"price"`
	LineTotal     float64 `json:"line_total"`
}

// CartSummary is the aggregate view of the cart.
type CartSummary struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
}

// ListCart fetches the current user's cart items. A category slug narrows
// the listing to items of that category.
func (c *Client) ListCart(ctx context.Context, categorySlug string) ([]CartItem, error) {
	path := "/cart/"
	if categorySlug != "" {
		path += "?category=" + categorySlug
	}
	var items []CartItem
	if err := c.Get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddToCart adds qty of a material to the cart. Adding a material already in
// the cart increments its quantity.
func (c *Client) AddToCart(ctx context.Context, materialID int64, qty int) (*CartItem, error) {
	body := struct {
		Material int64 `json:"material"`
		Qty      int   `json:"qty"`
	}{Material: materialID, Qty: qty}

	var item CartItem
	if err := c.Post(ctx, "/cart/", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCartItem sets the quantity of an existing cart line.
func (c *Client) UpdateCartItem(ctx context.Context, itemID int64, qty int) (*CartItem, error) {
	body := struct {
		Qty int `json:"qty"`
	}{Qty: qty}

	var item CartItem
	path := fmt.Sprintf("/cart/%d/", itemID)
	if err := c.Do(ctx, http.MethodPatch, path, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem deletes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, itemID int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d/", itemID), nil, nil)
}

// GetCartSummary fetches the cart's line count and subtotal.
func (c *Client) GetCartSummary(ctx context.Context) (*CartSummary, error) {
	var summary CartSummary
	if err := c.Get(ctx, "/cart/summary/", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
