package storesdk

import (
	"context"
	"fmt"
	"time"
)

// Supplier is a supplier or wholesaler account profile.
type Supplier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Rating    float64   `json:"rating"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// MaterialSupplier links a supplier to a material it can source, with
// supplier-specific pricing and lead time.
type MaterialSupplier struct {
	ID             int64    `json:"id"`
	Supplier       int64    `json:"supplier"`
	Material       int64    `json:"material"`
	WholesalePrice *float64 `json:"wholesale_price,omitempty"`
	IsPrimary      bool     `json:"is_primary"`
	LeadTimeDays   int      `json:"lead_time_days"`
}

// ListSuppliers fetches all active suppliers.
func (c *Client) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	var suppliers []Supplier
	if err := c.Get(ctx, "/suppliers/", &suppliers); err != nil {
		return nil, err
	}
	return suppliers, nil
}

// GetSupplier fetches one supplier profile.
func (c *Client) GetSupplier(ctx context.Context, id int64) (*Supplier, error) {
	var supplier Supplier
	if err := c.Get(ctx, fmt.Sprintf("/suppliers/%d/", id), &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

// ListMaterialSuppliers fetches supplier sourcing links, optionally narrowed
// to one material.
func (c *Client) ListMaterialSuppliers(ctx context.Context, materialID int64) ([]MaterialSupplier, error) {
	path := "/material-suppliers/"
	if materialID != 0 {
		path += fmt.Sprintf("?material=%d", materialID)
	}
	var links []MaterialSupplier
	if err := c.Get(ctx, path, &links); err != nil {
		return nil, err
	}
	return links, nil
}
