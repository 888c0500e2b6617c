package storesdk

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Bulk request and bid workflow statuses.
const (
	BulkRequestOpen   = "OPEN"
	BulkRequestClosed = "CLOSED"

	BidPending  = "PENDING"
	BidAccepted = "ACCEPTED"
	BidRejected = "REJECTED"
)

// BulkRequest is a buyer's call for supplier bids on a large quantity of one
// material.
type BulkRequest struct {
	ID            int64     `json:"id"`
	Requester     string    `json:"requester"`
	Material      int64     `json:"material"`
	MaterialSKU   string    `json:"material_sku"`
	MaterialTitle string    `json:"material_title"`
	Qty           int       `json:"qty"`
	Deadline      string    `json:"deadline,omitempty"`
	Status        string    `json:"status"`
	AcceptedBid   *int64    `json:"accepted_bid,omitempty"`
	BidsCount     int       `json:"bids_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// Bid is a supplier's offer on a bulk request.
type Bid struct {
	ID            int64     `json:"id"`
	BulkRequest   int64     `json:"bulk_request"`
	SupplierName  string    `json:"supplier_name"`
	UnitPrice     float64   `json:"unit_price"`
	Note          string    `json:"note,omitempty"`
	Status        string    `json:"status"`
	MaterialSKU   string    `json:"material_sku"`
	MaterialTitle string    `json:"material_title"`
	CreatedAt     time.Time `json:"created_at"`
}

// ListBulkRequests fetches bulk requests visible to the caller: suppliers
// see open requests to bid on, buyers see their own.
func (c *Client) ListBulkRequests(ctx context.Context) ([]BulkRequest, error) {
	var reqs []BulkRequest
	if err := c.Get(ctx, "/bulk-requests/", &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// CreateBulkRequest opens a new call for bids. Deadline is "YYYY-MM-DD".
func (c *Client) CreateBulkRequest(ctx context.Context, materialID int64, qty int, deadline string) (*BulkRequest, error) {
	body := struct {
		Material int64  `json:"material"`
		Qty      int    `json:"qty"`
		Deadline string `json:"deadline,omitempty"`
	}{Material: materialID, Qty: qty, Deadline: deadline}

	var req BulkRequest
	if err := c.Post(ctx, "/bulk-requests/", body, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// CloseBulkRequest closes a request without accepting any bid.
func (c *Client) CloseBulkRequest(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/bulk-requests/%d/close/", id), nil, nil)
}

// ListBids fetches bids: a supplier's own, or all bids on the caller's bulk
// requests. A non-zero bulkRequestID narrows to one request.
func (c *Client) ListBids(ctx context.Context, bulkRequestID int64) ([]Bid, error) {
	path := "/bids/"
	if bulkRequestID != 0 {
		path += fmt.Sprintf("?bulk_request=%d", bulkRequestID)
	}
	var bids []Bid
	if err := c.Get(ctx, path, &bids); err != nil {
		return nil, err
	}
	return bids, nil
}

// CreateBid places a supplier offer on an open bulk request.
func (c *Client) CreateBid(ctx context.Context, bulkRequestID int64, unitPrice float64, note string) (*Bid, error) {
	body := struct {
		BulkRequest int64   `json:"bulk_request"`
		UnitPrice   float64 `json:"unit_price"`
		Note        string  `json:"note,omitempty"`
	}{BulkRequest: bulkRequestID, UnitPrice: unitPrice, Note: note}

	var bid Bid
	if err := c.Post(ctx, "/bids/", body, &bid); err != nil {
		return nil, err
	}
	return &bid, nil
}

// AcceptBid accepts a bid, closing its bulk request and rejecting the rest.
// Only the request owner may accept.
func (c *Client) AcceptBid(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("/bids/%d/accept/", id), nil, nil)
}

// RejectBid rejects a single bid.
func (c *Client) RejectBid(ctx context.Context, id int64) error {
	return c.Do(ctx, http.MethodPost, fmt.Sprintf("/bids/%d/reject/", id), nil, nil)
}
