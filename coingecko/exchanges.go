package coingecko

import (
	"context"
	"fmt"
)

// GetExchangesList lists exchanges with trading volume
func (c *Client) GetExchangesList(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "exchanges", params)
}

// GetExchangesIDNameList lists exchange ids and names
func (c *Client) GetExchangesIDNameList(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "exchanges/list", params)
}

// GetExchangesByID returns exchange volume and top tickers
func (c *Client) GetExchangesByID(ctx context.Context, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("exchanges/%s", id), params)
}

// GetExchangesTickersByID returns the tickers of an exchange
func (c *Client) GetExchangesTickersByID(ctx context.Context, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("exchanges/%s/tickers", id), params)
}

// GetExchangesVolumeChartByID returns exchange volume in BTC for the last days
func (c *Client) GetExchangesVolumeChartByID(ctx context.Context, id, days string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("exchanges/%s/volume_chart", id), with(params, "days", days))
}

// GetExchangesVolumeChartByIDWithinTimeRange returns exchange volume between
// two unix timestamps.
func (c *Client) GetExchangesVolumeChartByIDWithinTimeRange(ctx context.Context, id string, from, to int64, params *Params) (any, error) {
	p := with(params, "from", from, "to", to)
	return c.get(ctx, fmt.Sprintf("exchanges/%s/volume_chart/range", id), p)
}
