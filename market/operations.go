package market

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/s0up4200/geckoctl/coingecko"
)

// MaxPerPage is the largest page size the markets endpoint accepts
const MaxPerPage = 250

// ListOptions contains options for listing coin markets
type ListOptions struct {
	VsCurrency string
	PerPage    int
	Page       int
	Order      string
	Category   string
	IDs        []string
}

// params converts the options into query parameters
func (o ListOptions) params() *coingecko.Params {
	p := coingecko.NewParams()
	if len(o.IDs) > 0 {
		p.Set("ids", o.IDs)
	}
	if o.Category != "" {
		p.Set("category", o.Category)
	}
	if o.Order != "" {
		p.Set("order", o.Order)
	}
	if o.PerPage > 0 {
		p.Set("per_page", min(o.PerPage, MaxPerPage))
	}
	if o.Page > 0 {
		p.Set("page", o.Page)
	}
	return p
}

// Operations handles market listing and lookup operations
type Operations struct {
	api       MarketAPI
	logger    zerolog.Logger
	formatter Formatter
}

// NewOperations creates a new Operations instance
func NewOperations(api MarketAPI, logger zerolog.Logger) *Operations {
	return &Operations{
		api:       api,
		logger:    logger,
		formatter: NewConsoleFormatter(),
	}
}

// SetFormatter replaces the console formatter
func (o *Operations) SetFormatter(f Formatter) {
	o.formatter = f
}

// Formatter returns the formatter used for console output
func (o *Operations) Formatter() Formatter {
	return o.formatter
}

// Ping checks that the API is reachable
func (o *Operations) Ping(ctx context.Context) (string, error) {
	v, err := o.api.Ping(ctx, nil)
	if err != nil {
		return "", err
	}
	body, _ := v.(map[string]any)
	return stringField(body, "gecko_says"), nil
}

// ListMarkets returns one page of coin markets
func (o *Operations) ListMarkets(ctx context.Context, opts ListOptions) ([]CoinInfo, error) {
	v, err := o.api.GetCoinsMarkets(ctx, opts.VsCurrency, opts.params())
	if err != nil {
		return nil, fmt.Errorf("failed to get coin markets: %w", err)
	}

	coins, err := CoinsFromMarkets(v)
	if err != nil {
		return nil, err
	}

	o.logger.Debug().Msgf("Retrieved %d coins from CoinGecko", len(coins))
	return coins, nil
}

// SearchMarkets lists coin markets and keeps those matching filterFunc,
// sorted by market cap rank.
func (o *Operations) SearchMarkets(ctx context.Context, opts ListOptions, filterFunc func(CoinInfo) bool) ([]CoinInfo, error) {
	coins, err := o.ListMarkets(ctx, opts)
	if err != nil {
		return nil, err
	}

	results := FilterCoins(coins, filterFunc)

	o.logger.Debug().
		Int("total", len(coins)).
		Int("matched", len(results)).
		Msg("Filtered coin markets")
	return results, nil
}

// FilterCoins keeps the coins matching filterFunc and sorts them by rank.
// A nil filterFunc keeps every coin. Unranked coins sort last.
func FilterCoins(coins []CoinInfo, filterFunc func(CoinInfo) bool) []CoinInfo {
	results := make([]CoinInfo, 0, len(coins))
	for _, coin := range coins {
		if filterFunc == nil || filterFunc(coin) {
			results = append(results, coin)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := results[i].Rank, results[j].Rank
		if ri == 0 || rj == 0 {
			return ri != 0 && rj == 0
		}
		return ri < rj
	})
	return results
}

// Prices returns the price of each coin in each currency
func (o *Operations) Prices(ctx context.Context, ids, vsCurrencies []string) ([]Price, error) {
	if len(ids) == 0 || len(vsCurrencies) == 0 {
		return nil, fmt.Errorf("at least one coin id and one currency are required")
	}

	v, err := o.api.GetPrice(ctx, strings.Join(ids, ","), strings.Join(vsCurrencies, ","), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get prices: %w", err)
	}
	return PricesFromResponse(v)
}

// Global returns global market statistics
func (o *Operations) Global(ctx context.Context) (GlobalInfo, error) {
	v, err := o.api.GetGlobal(ctx, nil)
	if err != nil {
		return GlobalInfo{}, fmt.Errorf("failed to get global data: %w", err)
	}
	return GlobalFromData(v)
}

// Defi returns global DeFi statistics as reported by the API
func (o *Operations) Defi(ctx context.Context) (map[string]any, error) {
	v, err := o.api.GetGlobalDecentralizedFinanceDefi(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get defi data: %w", err)
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: defi data is %T, want object", ErrUnexpectedPayload, v)
	}
	return fields, nil
}

// Trending returns the trending coins
func (o *Operations) Trending(ctx context.Context) ([]TrendingCoin, error) {
	v, err := o.api.GetSearchTrending(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending coins: %w", err)
	}
	return TrendingFromResponse(v)
}
