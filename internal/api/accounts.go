package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brokerbooks-dev/brokerbooks/internal/model"
)

// ListAccounts fetches the full chart of accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var payload []accountPayload
	if err := c.do(ctx, http.MethodGet, "accounts/", nil, &payload); err != nil {
		return nil, err
	}
	accounts := make([]model.Account, 0, len(payload))
	for _, p := range payload {
		accounts = append(accounts, p.toModel())
	}
	return accounts, nil
}

// ListAccountTypes fetches the account type reference data.
func (c *Client) ListAccountTypes(ctx context.Context) ([]model.AccountType, error) {
	var payload []accountTypePayload
	if err := c.do(ctx, http.MethodGet, "account-types/", nil, &payload); err != nil {
		return nil, err
	}
	types := make([]model.AccountType, 0, len(payload))
	for _, p := range payload {
		types = append(types, p.toModel())
	}
	return types, nil
}

// CreateAccount creates an account and returns it with its assigned ID.
func (c *Client) CreateAccount(ctx context.Context, a model.Account) (model.Account, error) {
	var created accountPayload
	if err := c.do(ctx, http.MethodPost, "accounts/", toAccountPayload(a), &created); err != nil {
		return model.Account{}, err
	}
	return created.toModel(), nil
}

// UpdateAccount replaces an account in place.
func (c *Client) UpdateAccount(ctx context.Context, id int, a model.Account) (model.Account, error) {
	var updated accountPayload
	path := fmt.Sprintf("accounts/%d/", id)
	if err := c.do(ctx, http.MethodPut, path, toAccountPayload(a), &updated); err != nil {
		return model.Account{}, err
	}
	return updated.toModel(), nil
}

// DeleteAccount deletes an account. The backend refuses accounts that still
// carry journal lines or children.
func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("accounts/%d/", id), nil, nil)
}
