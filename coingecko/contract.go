package coingecko

import (
	"context"
	"fmt"
)

// Coins looked up by token contract address on an asset platform.

// GetCoinInfoFromContractAddressByID returns coin data for the token at
// contractAddress on platform id.
func (c *Client) GetCoinInfoFromContractAddressByID(ctx context.Context, id, contractAddress string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("coins/%s/contract/%s", id, contractAddress), params)
}

func (c *Client) GetCoinMarketChartFromContractAddressByID(ctx context.Context, id, contractAddress, vsCurrency, days string, params *Params) (any, error) {
	path := fmt.Sprintf("coins/%s/contract/%s/market_chart?vs_currency=%s&days=%s",
		id, contractAddress, vsCurrency, days)
	return c.getWithQuery(ctx, path, params)
}

func (c *Client) GetCoinMarketChartRangeFromContractAddressByID(ctx context.Context, id, contractAddress, vsCurrency string, from, to int64, params *Params) (any, error) {
	path := fmt.Sprintf("coins/%s/contract/%s/market_chart/range?vs_currency=%s&from=%d&to=%d",
		id, contractAddress, vsCurrency, from, to)
	return c.getWithQuery(ctx, path, params)
}
