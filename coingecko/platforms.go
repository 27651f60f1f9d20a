package coingecko

import (
	"context"
	"fmt"
)

// GetAssetPlatforms lists all asset platforms (blockchain networks)
func (c *Client) GetAssetPlatforms(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "asset_platforms", params)
}

// GetAssetPlatformByID returns the token list of an asset platform
func (c *Client) GetAssetPlatformByID(ctx context.Context, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("token_lists/%s/all.json", id), params)
}

// GetCoinsCategoriesList lists category ids and names
func (c *Client) GetCoinsCategoriesList(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "coins/categories/list", params)
}

// GetCoinsCategories lists categories with market data
func (c *Client) GetCoinsCategories(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "coins/categories", params)
}
