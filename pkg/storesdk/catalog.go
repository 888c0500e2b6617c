package storesdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Category groups materials for filtering.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PriceTier is one priced tier (RETAIL or WHOLESALE) of a material.
type PriceTier struct {
	ID       int64   `json:"id"`
	Material int64   `json:"material"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
}

// Material is the full inventory view of a product, including all price
// tiers. Returned by the materials endpoints used for inventory management.
type Material struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	SKU          string      `json:"sku"`
	Category     int64       `json:"category"`
	CategoryName string      `json:"category_name"`
	Unit         string      `json:"unit"`
	StockQty     int         `json:"stock_qty"`
	MinStock     int         `json:"min_stock"`
	Description  string      `json:"description"`
	Prices       []PriceTier `json:"prices,omitempty"`
}

// CatalogItem is the storefront view of a material: a single effective price
// picked by the backend for the caller's role (wholesale pricing for
// wholesalers and admins, retail otherwise).
type CatalogItem struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	SKU          string  `json:"sku"`
	Category     int64   `json:"category"`
	CategoryName string  `json:"category_name"`
	Unit         string  `json:"unit"`
	StockQty     int     `json:"stock_qty"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	PriceType    string  `json:"price_type"`
}

// CatalogFilter narrows a catalog listing. Zero values are omitted from the
// query string.
type CatalogFilter struct {
	Search   string // free-text search over title and SKU
	Category string // category slug
	Ordering string // backend ordering key, e.g. "title" or "-price"
}

func (f CatalogFilter) query() string {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Ordering != "" {
		q.Set("ordering", f.Ordering)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListCatalog fetches the role-priced catalog, optionally filtered.
func (c *Client) ListCatalog(ctx context.Context, filter CatalogFilter) ([]CatalogItem, error) {
	var items []CatalogItem
	if err := c.Get(ctx, "/catalog/"+filter.query(), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetCatalogItem fetches a single catalog entry.
func (c *Client) GetCatalogItem(ctx context.Context, id int64) (*CatalogItem, error) {
	var item CatalogItem
	if err := c.Get(ctx, fmt.Sprintf("/catalog/%d/", id), &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListCategories fetches all categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var cats []Category
	if err := c.Get(ctx, "/categories/", &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

// MaterialInput is the payload for creating or updating a material.
type MaterialInput struct {
	Title       string `json:"title"`
	SKU         string `json:"sku"`
	Category    int64  `json:"category"`
	Unit        string `json:"unit"`
	StockQty    int    `json:"stock_qty"`
	MinStock    int    `json:"min_stock"`
	Description string `json:"description,omitempty"`
}

// ListMaterials fetches the full material list with all price tiers.
// Requires an inventory-managing role server-side.
func (c *Client) ListMaterials(ctx context.Context) ([]Material, error) {
	var materials []Material
	if err := c.Get(ctx, "/materials/", &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// CreateMaterial adds a material to the inventory.
func (c *Client) CreateMaterial(ctx context.Context, in MaterialInput) (*Material, error) {
	var material Material
	if err := c.Post(ctx, "/materials/", in, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

// UpdateMaterial applies a partial update to a material.
func (c *Client) UpdateMaterial(ctx context.Context, id int64, fields map[string]any) (*Material, error) {
	var material Material
	path := fmt.Sprintf("/materials/%d/", id)
	if err := c.Do(ctx, http.MethodPatch, path, fields, &material); err != nil {
		return nil, err
	}
	return &material, nil
}

// DeleteMaterial removes a material from the inventory.
func (c *Client) DeleteMaterial(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodDelete, fmt.Sprintf("/materials/%d/", id), nil, nil)
}

// SetPriceTier creates or replaces a material's price for one tier type.
func (c *Client) SetPriceTier(ctx context.Context, materialID int64, tierType string, price float64) (*PriceTier, error) {
	body := struct {
		Material int64   `json:"material"`
		Type     string  `json:"type"`
		Price    float64 `json:"price"`
	}{Material: materialID, Type: tierType, Price: price}

	var tier PriceTier
	if err := c.Post(ctx, "/prices/", body, &tier); err != nil {
		return nil, err
	}
	return &tier, nil
}

// StockAlert is an open or resolved low-stock alert on a material.
type StockAlert struct {
	ID            int64  `json:"id"`
	Type          string `json:"type"`
	IsResolved    bool   `json:"is_resolved"`
	Note          string `json:"note"`
	Material      int64  `json:"material"`
	MaterialSKU   string `json:"material_sku"`
	MaterialTitle string `json:"material_title"`
}

// ListStockAlerts fetches low-stock alerts, optionally only unresolved ones.
func (c *Client) ListStockAlerts(ctx context.Context, openOnly bool) ([]StockAlert, error) {
	path := "/alerts/"
	if openOnly {
		path += "?is_resolved=" + strconv.FormatBool(false)
	}
	var alerts []StockAlert
	if err := c.Get(ctx, path, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
