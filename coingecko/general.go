package coingecko

import (
	"context"
	"fmt"
)

// GetExchangeRates returns BTC exchange rates against other currencies
func (c *Client) GetExchangeRates(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "exchange_rates", params)
}

// Search looks up coins, categories and markets matching query
func (c *Client) Search(ctx context.Context, query string, params *Params) (any, error) {
	return c.getWithQuery(ctx, fmt.Sprintf("search?query=%s", query), params)
}

// GetSearchTrending returns the trending search coins, NFTs and categories
func (c *Client) GetSearchTrending(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "search/trending", params)
}

// GetGlobal returns global cryptocurrency market data, unwrapped from its
// data envelope.
func (c *Client) GetGlobal(ctx context.Context, params *Params) (any, error) {
	return c.getData(ctx, "global", params)
}

// GetGlobalDecentralizedFinanceDefi returns global DeFi market data,
// unwrapped from its data envelope.
func (c *Client) GetGlobalDecentralizedFinanceDefi(ctx context.Context, params *Params) (any, error) {
	return c.getData(ctx, "global/decentralized_finance_defi", params)
}

// GetGlobalMarketCapChart returns total market cap for the last days
func (c *Client) GetGlobalMarketCapChart(ctx context.Context, days string, params *Params) (any, error) {
	return c.get(ctx, "global/market_cap_chart", with(params, "days", days))
}

// GetCompaniesPublicTreasuryByCoinID returns public companies' holdings of
// coinID (bitcoin or ethereum).
func (c *Client) GetCompaniesPublicTreasuryByCoinID(ctx context.Context, coinID string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("companies/public_treasury/%s", coinID), params)
}
