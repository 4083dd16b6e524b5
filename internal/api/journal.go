package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// ListJournalEntries fetches all journal entries with embedded lines.
func (c *Client) ListJournalEntries(ctx context.Context) ([]model.JournalEntry, error) {
	var payload []journalEntryPayload
	if err := c.do(ctx, http.MethodGet, "journal-entries/", nil, &payload); err != nil {
		return nil, err
	}
	entries := make([]model.JournalEntry, 0, len(payload))
	for _, p := range payload {
		e, err := p.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// GetJournalEntry fetches a single journal entry.
func (c *Client) GetJournalEntry(ctx context.Context, id int) (model.JournalEntry, error) {
	var payload journalEntryPayload
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("journal-entries/%d/", id), nil, &payload); err != nil {
		return model.JournalEntry{}, err
	}
	return payload.toModel()
}

// CreateJournalEntry posts a new entry. The backend assigns the ID and, for
// entries without one, the voucher number.
func (c *Client) CreateJournalEntry(ctx context.Context, e model.JournalEntry) (model.JournalEntry, error) {
	var created journalEntryPayload
	if err := c.do(ctx, http.MethodPost, "journal-entries/", toJournalEntryPayload(e), &created); err != nil {
		return model.JournalEntry{}, err
	}
	return created.toModel()
}

// UpdateJournalEntry replaces an entry's whole line set. The stored voucher
// number is preserved, never re-requested.
func (c *Client) UpdateJournalEntry(ctx context.Context, id int, e model.JournalEntry) (model.JournalEntry, error) {
	var updated journalEntryPayload
	path := fmt.Sprintf("journal-entries/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, toJournalEntryPayload(e), &updated); err != nil {
		return model.JournalEntry{}, err
	}
	return updated.toModel()
}

// DeleteJournalEntry deletes an entry. Ledger views are derived, so no
// recomputation follows.
func (c *Client) DeleteJournalEntry(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("journal-entries/%d/", id), nil, nil)
}

// NextVoucherNumber asks the backend for the next sequential number of a
// voucher type. Numbering lives server-side; the client never computes it.
func (c *Client) NextVoucherNumber(ctx context.Context, vt model.VoucherType) (string, error) {
	var payload struct {
		NextVoucherNo string `json:"next_voucher_no"`
	}
	path := fmt.Sprintf("journal-entries/next-voucher/?type=%s", vt)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return "", err
	}
	return payload.NextVoucherNo, nil
}
