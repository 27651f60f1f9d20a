package coingecko

import (
	"context"
	"fmt"
)

// Ping checks the API server status
func (c *Client) Ping(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "ping", params)
}

// GetPrice returns the current price of the coins in ids, quoted in each of
// vsCurrencies. Both arguments are comma-separated lists; spaces are ignored.
func (c *Client) GetPrice(ctx context.Context, ids, vsCurrencies string, params *Params) (any, error) {
	p := with(params,
		"ids", stripSpaces(ids),
		"vs_currencies", stripSpaces(vsCurrencies),
	)
	return c.get(ctx, "simple/price", p)
}

// GetTokenPrice returns the current price of tokens on the asset platform id,
// looked up by contract address.
func (c *Client) GetTokenPrice(ctx context.Context, id, contractAddresses, vsCurrencies string, params *Params) (any, error) {
	p := with(params,
		"contract_addresses", stripSpaces(contractAddresses),
		"vs_currencies", stripSpaces(vsCurrencies),
	)
	return c.get(ctx, fmt.Sprintf("simple/token_price/%s", id), p)
}

// GetSupportedVsCurrencies lists the currencies usable as vs_currencies
func (c *Client) GetSupportedVsCurrencies(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "simple/supported_vs_currencies", params)
}
