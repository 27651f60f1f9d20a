package coingecko

import (
	"context"
	"fmt"
)

// GetIndexes lists market indexes
func (c *Client) GetIndexes(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "indexes", params)
}

// GetIndexesByMarketIDAndIndexID returns one market index
func (c *Client) GetIndexesByMarketIDAndIndexID(ctx context.Context, marketID, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("indexes/%s/%s", marketID, id), params)
}

// GetIndexesList lists market index ids and names
func (c *Client) GetIndexesList(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "indexes/list", params)
}

// GetDerivatives lists derivative tickers
func (c *Client) GetDerivatives(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "derivatives", params)
}

// GetDerivativesExchanges lists derivative exchanges
func (c *Client) GetDerivativesExchanges(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "derivatives/exchanges", params)
}

// GetDerivativesExchangesByID returns one derivative exchange
func (c *Client) GetDerivativesExchangesByID(ctx context.Context, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("derivatives/exchanges/%s", id), params)
}

// GetDerivativesExchangesList lists derivative exchange ids and names
func (c *Client) GetDerivativesExchangesList(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "derivatives/exchanges/list", params)
}
