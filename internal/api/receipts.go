package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// ListReceipts fetches all freight receipts.
func (c *Client) ListReceipts(ctx context.Context) ([]model.Receipt, error) {
	var payload []receiptPayload
	if err := c.do(ctx, http.MethodGet, "receipts/", nil, &payload); err != nil {
		return nil, err
	}
	receipts := make([]model.Receipt, 0, len(payload))
	for _, p := range payload {
		r, err := p.toModel()
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}
	return receipts, nil
}

// CreateReceipt posts a new receipt.
func (c *Client) CreateReceipt(ctx context.Context, r model.Receipt) (model.Receipt, error) {
	var created receiptPayload
	if err := c.do(ctx, http.MethodPost, "receipts/", toReceiptPayload(r), &created); err != nil {
		return model.Receipt{}, err
	}
	return created.toModel()
}

// UpdateReceipt replaces a receipt in place.
func (c *Client) UpdateReceipt(ctx context.Context, id int, r model.Receipt) (model.Receipt, error) {
	var updated receiptPayload
	path := fmt.Sprintf("receipts/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, toReceiptPayload(r), &updated); err != nil {
		return model.Receipt{}, err
	}
	return updated.toModel()
}

// DeleteReceipt deletes a receipt.
func (c *Client) DeleteReceipt(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("receipts/%d/", id), nil, nil)
}
