package coingecko

import (
	"context"
	"fmt"
)

// On-chain DEX data (GeckoTerminal).

func (c *Client) GetOnchainTokenPrice(ctx context.Context, network, tokenAddress string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/simple/networks/%s/token_price/%s", network, tokenAddress), params)
}

func (c *Client) GetOnchainNetworks(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "onchain/networks", params)
}

func (c *Client) GetOnchainDexes(ctx context.Context, network string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/networks/%s/dexes", network), params)
}

// GetOnchainTrendingPools returns trending pools across all networks
func (c *Client) GetOnchainTrendingPools(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "onchain/networks/trending_pools", params)
}

func (c *Client) GetOnchainNetworkTrendingPools(ctx context.Context, network string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/networks/%s/trending_pools", network), params)
}

func (c *Client) GetOnchainPool(ctx context.Context, network, poolAddress string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/networks/%s/pools/%s", network, poolAddress), params)
}

// GetOnchainMultiPools returns several pools at once; poolAddresses is a
// comma-separated list.
func (c *Client) GetOnchainMultiPools(ctx context.Context, network, poolAddresses string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/networks/%s/pools/multi/%s", network, poolAddresses), params)
}

func (c *Client) GetOnchainTopPools(ctx context.Context, network string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/networks/%s/pools", network), params)
}

func (c *Client) GetOnchainDexTopPools(ctx context.Context, network, dex string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/networks/%s/dexes/%s/pools", network, dex), params)
}

func (c *Client) GetOnchainNewPools(ctx context.Context, network string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/networks/%s/new_pools", network), params)
}

// GetOnchainAllNewPools returns new pools across all networks
func (c *Client) GetOnchainAllNewPools(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "onchain/networks/new_pools", params)
}

// SearchOnchainPools searches pools; pass the search term as the "query" param
func (c *Client) SearchOnchainPools(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "onchain/search/pools", params)
}

func (c *Client) GetOnchainTokenPools(ctx context.Context, network, tokenAddress string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("onchain/networks/%s/tokens/%s/pools", network, tokenAddress), params)
}
