package market

import (
	"context"

	"github.com/s0up4200/geckoctl/coingecko"
)

// MarketAPI defines the CoinGecko operations used for market views.
// *coingecko.Client satisfies it.
type MarketAPI interface {
	Ping(ctx context.Context, params *coingecko.Params) (any, error)
	GetPrice(ctx context.Context, ids, vsCurrencies string, params *coingecko.Params) (any, error)
	GetCoinsMarkets(ctx context.Context, vsCurrency string, params *coingecko.Params) (any, error)
	GetGlobal(ctx context.Context, params *coingecko.Params) (any, error)
	GetGlobalDecentralizedFinanceDefi(ctx context.Context, params *coingecko.Params) (any, error)
	GetSearchTrending(ctx context.Context, params *coingecko.Params) (any, error)
}

// Formatter defines the interface for formatting market output
type Formatter interface {
	FormatCoinList(coins []CoinInfo, options FormatOptions) string
	FormatPrices(prices []Price) string
	FormatGlobal(global GlobalInfo, vsCurrency string) string
	FormatTrending(coins []TrendingCoin) string
	FormatSnapshot(snapshot *Snapshot, options FormatOptions) string
	FormatFields(title string, fields map[string]any) string
}

// FormatOptions contains options for formatting output
type FormatOptions struct {
	VsCurrency  string
	ShowDetails bool
}
