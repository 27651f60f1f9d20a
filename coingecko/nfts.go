package coingecko

import (
	"context"
	"fmt"
)

// GetNFTsList lists NFT collections
func (c *Client) GetNFTsList(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "nfts/list", params)
}

// GetNFTsByID returns an NFT collection
func (c *Client) GetNFTsByID(ctx context.Context, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("nfts/%s", id), params)
}

// GetNFTsByAssetPlatformIDAndContractAddress returns an NFT collection by
// contract address.
func (c *Client) GetNFTsByAssetPlatformIDAndContractAddress(ctx context.Context, assetPlatformID, contractAddress string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("nfts/%s/contract/%s", assetPlatformID, contractAddress), params)
}

// GetNFTsMarkets lists NFT collections with market data
func (c *Client) GetNFTsMarkets(ctx context.Context, params *Params) (any, error) {
	return c.get(ctx, "nfts/markets", params)
}

// GetNFTsMarketChartByID returns collection market data for the last days
func (c *Client) GetNFTsMarketChartByID(ctx context.Context, id, days string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("nfts/%s/market_chart", id), with(params, "days", days))
}

// GetNFTsMarketChartByAssetPlatformIDAndContractAddress returns collection
// market data for the last days, looked up by contract address.
func (c *Client) GetNFTsMarketChartByAssetPlatformIDAndContractAddress(ctx context.Context, assetPlatformID, contractAddress, days string, params *Params) (any, error) {
	path := fmt.Sprintf("nfts/%s/contract/%s/market_chart", assetPlatformID, contractAddress)
	return c.get(ctx, path, with(params, "days", days))
}

// GetNFTsTickers returns the marketplace tickers of a collection
func (c *Client) GetNFTsTickers(ctx context.Context, id string, params *Params) (any, error) {
	return c.get(ctx, fmt.Sprintf("nfts/%s/tickers", id), params)
}
