package coingecko

import (
	"context"
	"fmt"
)

// GetCoins lists coins with market data
func (c *Client) GetCoins(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "coins", params)
}

// GetCoinTopGainersLosers returns the top movers quoted in vsCurrency
func (c *Client) GetCoinTopGainersLosers(ctx context.Context, vsCurrency string, params *Params) (any, error) {
	path := fmt.Sprintf("coins/top_gainers_losers?vs_currency=%s", vsCurrency)
	return c.getWithQuery(ctx, path, params)
}

// GetCoinsListNew lists the most recently added coins
func (c *Client) GetCoinsListNew(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "coins/list/new", params)
}

// GetCoinsList lists all supported coins with id, name and symbol
func (c *Client) GetCoinsList(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "coins/list", params)
}

// GetCoinsMarkets lists coins with price, market cap and volume in vsCurrency
func (c *Client) GetCoinsMarkets(ctx context.Context, vsCurrency string, params *Params) (any, error) {
	return c.get(ctx, "coins/markets", with(params, "vs_currency", vsCurrency))
}

// GetCoinByID returns the full description of a coin
func (c *Client) GetCoinByID(ctx context.Context, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("coins/%s", id), params)
}

// GetCoinTickerByID returns the exchange tickers of a coin
func (c *Client) GetCoinTickerByID(ctx context.Context, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("coins/%s/tickers", id), params)
}

// GetCoinHistoryByID returns coin data at date (dd-mm-yyyy)
func (c *Client) GetCoinHistoryByID(ctx context.Context, id, date string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("coins/%s/history", id), with(params, "date", date))
}

// GetCoinMarketChartByID returns price, market cap and volume series for the
// last days (a number or "max").
func (c *Client) GetCoinMarketChartByID(ctx context.Context, id, vsCurrency, days string, params *Params) (any, error) {
	path := fmt.Sprintf("coins/%s/market_chart?vs_currency=%s&days=%s", id, vsCurrency, days)
	return c.getWithQuery(ctx, path, params)
}

// GetCoinMarketChartRangeByID returns market chart series between two unix
// timestamps.
func (c *Client) GetCoinMarketChartRangeByID(ctx context.Context, id, vsCurrency string, from, to int64, params *Params) (any, error) {
	path := fmt.Sprintf("coins/%s/market_chart/range?vs_currency=%s&from=%d&to=%d", id, vsCurrency, from, to)
	return c.getWithQuery(ctx, path, params)
}

// GetCoinOHLCByID returns OHLC candles for the last days
func (c *Client) GetCoinOHLCByID(ctx context.Context, id, vsCurrency, days string, params *Params) (any, error) {
	path := fmt.Sprintf("coins/%s/ohlc?vs_currency=%s&days=%s", id, vsCurrency, days)
	return c.getWithQuery(ctx, path, params)
}

// GetCoinOHLCByIDRange returns OHLC candles between two unix timestamps at
// the given interval ("daily" or "hourly").
func (c *Client) GetCoinOHLCByIDRange(ctx context.Context, id, vsCurrency string, from, to int64, interval string, params *Params) (any, error) {
	p := with(params,
		"vs_currency", vsCurrency,
		"from", from,
		"to", to,
		"interval", interval,
	)
	return c.get(ctx, fmt.Sprintf("coins/%s/ohlc/range", id), p)
}

// GetCoinCirculatingSupplyChart returns circulating supply for the last days
func (c *Client) GetCoinCirculatingSupplyChart(ctx context.Context, id, days string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("coins/%s/circulating_supply_chart", id), with(params, "days", days))
}

// GetCoinCirculatingSupplyChartRange returns circulating supply between two
// unix timestamps.
func (c *Client) GetCoinCirculatingSupplyChartRange(ctx context.Context, id string, from, to int64, params *Params) (any, error) {
	p := with(params, "from", from, "to", to)
	return c.get(ctx, fmt.Sprintf("coins/%s/circulating_supply_chart/range", id), p)
}

// GetCoinTotalSupplyChart returns total supply for the last days
func (c *Client) GetCoinTotalSupplyChart(ctx context.Context, id, days string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("coins/%s/total_supply_chart", id), with(params, "days", days))
}

// GetCoinTotalSupplyChartRange returns total supply between two unix
// timestamps.
func (c *Client) GetCoinTotalSupplyChartRange(ctx context.Context, id string, from, to int64, params *Params) (any, error) {
	p := with(params, "from", from, "to", to)
	return c.get(ctx, fmt.Sprintf("coins/%s/total_supply_chart/range", id), p)
}
