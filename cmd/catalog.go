package cmd

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/s0up4200/geckoctl/coingecko"
)

// endpoint describes one client method callable from the command line
type endpoint struct {
	Name   string
	Group  string
	Method string
	Args   []string
	Call   func(ctx context.Context, c *coingecko.Client, args []string, p *coingecko.Params) (any, error)
}

// Usage returns the argument synopsis, e.g. "coin-history <id> <date>"
func (e endpoint) Usage() string {
	var sb strings.Builder
	sb.WriteString(e.Name)
	for _, arg := range e.Args {
		fmt.Fprintf(&sb, " <%s>", arg)
	}
	return sb.String()
}

// Invoke checks the argument count and calls the client method
func (e endpoint) Invoke(ctx context.Context, c *coingecko.Client, args []string, p *coingecko.Params) (any, error) {
	if len(args) != len(e.Args) {
		return nil, fmt.Errorf("%s expects %d argument(s), got %d: usage: %s", e.Name, len(e.Args), len(args), e.Usage())
	}
	return e.Call(ctx, c, args, p)
}

// lookupEndpoint finds a catalog entry by name or client method name
func lookupEndpoint(name string) (endpoint, bool) {
	for _, e := range catalog {
		if e.Name == name || strings.EqualFold(e.Method, name) {
			return e, true
		}
	}
	return endpoint{}, false
}

// catalogGroups returns the group names in catalog order
func catalogGroups() []string {
	var groups []string
	for _, e := range catalog {
		if !slices.Contains(groups, e.Group) {
			groups = append(groups, e.Group)
		}
	}
	return groups
}

// timeRange parses from/to arguments given as unix seconds
func timeRange(from, to string) (int64, int64, error) {
	f, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid from timestamp %q: %w", from, err)
	}
	t, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid to timestamp %q: %w", to, err)
	}
	if t < f {
		return 0, 0, fmt.Errorf("to (%d) is before from (%d)", t, f)
	}
	return f, t, nil
}

var catalog = []endpoint{
	{
		Name:   "ping",
		Group:  "simple",
		Method: "Ping",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.Ping(ctx, p)
		},
	},
	{
		Name:   "price",
		Group:  "simple",
		Method: "GetPrice",
		Args:   []string{"ids", "vs_currencies"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetPrice(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "token-price",
		Group:  "simple",
		Method: "GetTokenPrice",
		Args:   []string{"id", "contract_addresses", "vs_currencies"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetTokenPrice(ctx, a[0], a[1], a[2], p)
		},
	},
	{
		Name:   "supported-vs-currencies",
		Group:  "simple",
		Method: "GetSupportedVsCurrencies",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetSupportedVsCurrencies(ctx, p)
		},
	},
	{
		Name:   "coins",
		Group:  "coins",
		Method: "GetCoins",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetCoins(ctx, p)
		},
	},
	{
		Name:   "top-gainers-losers",
		Group:  "coins",
		Method: "GetCoinTopGainersLosers",
		Args:   []string{"vs_currency"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinTopGainersLosers(ctx, a[0], p)
		},
	},
	{
		Name:   "coins-list-new",
		Group:  "coins",
		Method: "GetCoinsListNew",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetCoinsListNew(ctx, p)
		},
	},
	{
		Name:   "coins-list",
		Group:  "coins",
		Method: "GetCoinsList",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetCoinsList(ctx, p)
		},
	},
	{
		Name:   "coins-markets",
		Group:  "coins",
		Method: "GetCoinsMarkets",
		Args:   []string{"vs_currency"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinsMarkets(ctx, a[0], p)
		},
	},
	{
		Name:   "coin",
		Group:  "coins",
		Method: "GetCoinByID",
		Args:   []string{"id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinByID(ctx, a[0], p)
		},
	},
	{
		Name:   "coin-tickers",
		Group:  "coins",
		Method: "GetCoinTickerByID",
		Args:   []string{"id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinTickerByID(ctx, a[0], p)
		},
	},
	{
		Name:   "coin-history",
		Group:  "coins",
		Method: "GetCoinHistoryByID",
		Args:   []string{"id", "date"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinHistoryByID(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "coin-market-chart",
		Group:  "coins",
		Method: "GetCoinMarketChartByID",
		Args:   []string{"id", "vs_currency", "days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinMarketChartByID(ctx, a[0], a[1], a[2], p)
		},
	},
	{
		Name:   "coin-market-chart-range",
		Group:  "coins",
		Method: "GetCoinMarketChartRangeByID",
		Args:   []string{"id", "vs_currency", "from", "to"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			from, to, err := timeRange(a[2], a[3])
			if err != nil {
				return nil, err
			}
			return c.GetCoinMarketChartRangeByID(ctx, a[0], a[1], from, to, p)
		},
	},
	{
		Name:   "coin-ohlc",
		Group:  "coins",
		Method: "GetCoinOHLCByID",
		Args:   []string{"id", "vs_currency", "days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinOHLCByID(ctx, a[0], a[1], a[2], p)
		},
	},
	{
		Name:   "coin-ohlc-range",
		Group:  "coins",
		Method: "GetCoinOHLCByIDRange",
		Args:   []string{"id", "vs_currency", "from", "to", "interval"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			from, to, err := timeRange(a[2], a[3])
			if err != nil {
				return nil, err
			}
			return c.GetCoinOHLCByIDRange(ctx, a[0], a[1], from, to, a[4], p)
		},
	},
	{
		Name:   "coin-circulating-supply-chart",
		Group:  "coins",
		Method: "GetCoinCirculatingSupplyChart",
		Args:   []string{"id", "days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinCirculatingSupplyChart(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "coin-circulating-supply-chart-range",
		Group:  "coins",
		Method: "GetCoinCirculatingSupplyChartRange",
		Args:   []string{"id", "from", "to"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			from, to, err := timeRange(a[1], a[2])
			if err != nil {
				return nil, err
			}
			return c.GetCoinCirculatingSupplyChartRange(ctx, a[0], from, to, p)
		},
	},
	{
		Name:   "coin-total-supply-chart",
		Group:  "coins",
		Method: "GetCoinTotalSupplyChart",
		Args:   []string{"id", "days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinTotalSupplyChart(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "coin-total-supply-chart-range",
		Group:  "coins",
		Method: "GetCoinTotalSupplyChartRange",
		Args:   []string{"id", "from", "to"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			from, to, err := timeRange(a[1], a[2])
			if err != nil {
				return nil, err
			}
			return c.GetCoinTotalSupplyChartRange(ctx, a[0], from, to, p)
		},
	},
	{
		Name:   "contract",
		Group:  "contract",
		Method: "GetCoinInfoFromContractAddressByID",
		Args:   []string{"id", "contract_address"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinInfoFromContractAddressByID(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "contract-market-chart",
		Group:  "contract",
		Method: "GetCoinMarketChartFromContractAddressByID",
		Args:   []string{"id", "contract_address", "vs_currency", "days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCoinMarketChartFromContractAddressByID(ctx, a[0], a[1], a[2], a[3], p)
		},
	},
	{
		Name:   "contract-market-chart-range",
		Group:  "contract",
		Method: "GetCoinMarketChartRangeFromContractAddressByID",
		Args:   []string{"id", "contract_address", "vs_currency", "from", "to"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			from, to, err := timeRange(a[3], a[4])
			if err != nil {
				return nil, err
			}
			return c.GetCoinMarketChartRangeFromContractAddressByID(ctx, a[0], a[1], a[2], from, to, p)
		},
	},
	{
		Name:   "asset-platforms",
		Group:  "platforms",
		Method: "GetAssetPlatforms",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetAssetPlatforms(ctx, p)
		},
	},
	{
		Name:   "asset-platform",
		Group:  "platforms",
		Method: "GetAssetPlatformByID",
		Args:   []string{"id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetAssetPlatformByID(ctx, a[0], p)
		},
	},
	{
		Name:   "categories-list",
		Group:  "categories",
		Method: "GetCoinsCategoriesList",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetCoinsCategoriesList(ctx, p)
		},
	},
	{
		Name:   "categories",
		Group:  "categories",
		Method: "GetCoinsCategories",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetCoinsCategories(ctx, p)
		},
	},
	{
		Name:   "exchanges",
		Group:  "exchanges",
		Method: "GetExchangesList",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetExchangesList(ctx, p)
		},
	},
	{
		Name:   "exchanges-list",
		Group:  "exchanges",
		Method: "GetExchangesIDNameList",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetExchangesIDNameList(ctx, p)
		},
	},
	{
		Name:   "exchange",
		Group:  "exchanges",
		Method: "GetExchangesByID",
		Args:   []string{"id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetExchangesByID(ctx, a[0], p)
		},
	},
	{
		Name:   "exchange-tickers",
		Group:  "exchanges",
		Method: "GetExchangesTickersByID",
		Args:   []string{"id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetExchangesTickersByID(ctx, a[0], p)
		},
	},
	{
		Name:   "exchange-volume-chart",
		Group:  "exchanges",
		Method: "GetExchangesVolumeChartByID",
		Args:   []string{"id", "days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetExchangesVolumeChartByID(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "exchange-volume-chart-range",
		Group:  "exchanges",
		Method: "GetExchangesVolumeChartByIDWithinTimeRange",
		Args:   []string{"id", "from", "to"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			from, to, err := timeRange(a[1], a[2])
			if err != nil {
				return nil, err
			}
			return c.GetExchangesVolumeChartByIDWithinTimeRange(ctx, a[0], from, to, p)
		},
	},
	{
		Name:   "indexes",
		Group:  "derivatives",
		Method: "GetIndexes",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetIndexes(ctx, p)
		},
	},
	{
		Name:   "index",
		Group:  "derivatives",
		Method: "GetIndexesByMarketIDAndIndexID",
		Args:   []string{"market_id", "id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetIndexesByMarketIDAndIndexID(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "indexes-list",
		Group:  "derivatives",
		Method: "GetIndexesList",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetIndexesList(ctx, p)
		},
	},
	{
		Name:   "derivatives",
		Group:  "derivatives",
		Method: "GetDerivatives",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetDerivatives(ctx, p)
		},
	},
	{
		Name:   "derivatives-exchanges",
		Group:  "derivatives",
		Method: "GetDerivativesExchanges",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetDerivativesExchanges(ctx, p)
		},
	},
	{
		Name:   "derivatives-exchange",
		Group:  "derivatives",
		Method: "GetDerivativesExchangesByID",
		Args:   []string{"id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetDerivativesExchangesByID(ctx, a[0], p)
		},
	},
	{
		Name:   "derivatives-exchanges-list",
		Group:  "derivatives",
		Method: "GetDerivativesExchangesList",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetDerivativesExchangesList(ctx, p)
		},
	},
	{
		Name:   "nfts-list",
		Group:  "nfts",
		Method: "GetNFTsList",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetNFTsList(ctx, p)
		},
	},
	{
		Name:   "nft",
		Group:  "nfts",
		Method: "GetNFTsByID",
		Args:   []string{"id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetNFTsByID(ctx, a[0], p)
		},
	},
	{
		Name:   "nft-contract",
		Group:  "nfts",
		Method: "GetNFTsByAssetPlatformIDAndContractAddress",
		Args:   []string{"asset_platform_id", "contract_address"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetNFTsByAssetPlatformIDAndContractAddress(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "nfts-markets",
		Group:  "nfts",
		Method: "GetNFTsMarkets",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetNFTsMarkets(ctx, p)
		},
	},
	{
		Name:   "nft-market-chart",
		Group:  "nfts",
		Method: "GetNFTsMarketChartByID",
		Args:   []string{"id", "days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetNFTsMarketChartByID(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "nft-contract-market-chart",
		Group:  "nfts",
		Method: "GetNFTsMarketChartByAssetPlatformIDAndContractAddress",
		Args:   []string{"asset_platform_id", "contract_address", "days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetNFTsMarketChartByAssetPlatformIDAndContractAddress(ctx, a[0], a[1], a[2], p)
		},
	},
	{
		Name:   "nft-tickers",
		Group:  "nfts",
		Method: "GetNFTsTickers",
		Args:   []string{"id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetNFTsTickers(ctx, a[0], p)
		},
	},
	{
		Name:   "exchange-rates",
		Group:  "general",
		Method: "GetExchangeRates",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetExchangeRates(ctx, p)
		},
	},
	{
		Name:   "search",
		Group:  "general",
		Method: "Search",
		Args:   []string{"query"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.Search(ctx, a[0], p)
		},
	},
	{
		Name:   "trending",
		Group:  "general",
		Method: "GetSearchTrending",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetSearchTrending(ctx, p)
		},
	},
	{
		Name:   "global",
		Group:  "general",
		Method: "GetGlobal",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetGlobal(ctx, p)
		},
	},
	{
		Name:   "global-defi",
		Group:  "general",
		Method: "GetGlobalDecentralizedFinanceDefi",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetGlobalDecentralizedFinanceDefi(ctx, p)
		},
	},
	{
		Name:   "global-market-cap-chart",
		Group:  "general",
		Method: "GetGlobalMarketCapChart",
		Args:   []string{"days"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetGlobalMarketCapChart(ctx, a[0], p)
		},
	},
	{
		Name:   "public-treasury",
		Group:  "general",
		Method: "GetCompaniesPublicTreasuryByCoinID",
		Args:   []string{"coin_id"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetCompaniesPublicTreasuryByCoinID(ctx, a[0], p)
		},
	},
	{
		Name:   "onchain-token-price",
		Group:  "onchain",
		Method: "GetOnchainTokenPrice",
		Args:   []string{"network", "token_address"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainTokenPrice(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "onchain-networks",
		Group:  "onchain",
		Method: "GetOnchainNetworks",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainNetworks(ctx, p)
		},
	},
	{
		Name:   "onchain-dexes",
		Group:  "onchain",
		Method: "GetOnchainDexes",
		Args:   []string{"network"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainDexes(ctx, a[0], p)
		},
	},
	{
		Name:   "onchain-trending-pools",
		Group:  "onchain",
		Method: "GetOnchainTrendingPools",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainTrendingPools(ctx, p)
		},
	},
	{
		Name:   "onchain-network-trending-pools",
		Group:  "onchain",
		Method: "GetOnchainNetworkTrendingPools",
		Args:   []string{"network"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainNetworkTrendingPools(ctx, a[0], p)
		},
	},
	{
		Name:   "onchain-pool",
		Group:  "onchain",
		Method: "GetOnchainPool",
		Args:   []string{"network", "pool_address"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainPool(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "onchain-multi-pools",
		Group:  "onchain",
		Method: "GetOnchainMultiPools",
		Args:   []string{"network", "pool_addresses"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainMultiPools(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "onchain-top-pools",
		Group:  "onchain",
		Method: "GetOnchainTopPools",
		Args:   []string{"network"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainTopPools(ctx, a[0], p)
		},
	},
	{
		Name:   "onchain-dex-top-pools",
		Group:  "onchain",
		Method: "GetOnchainDexTopPools",
		Args:   []string{"network", "dex"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainDexTopPools(ctx, a[0], a[1], p)
		},
	},
	{
		Name:   "onchain-new-pools",
		Group:  "onchain",
		Method: "GetOnchainNewPools",
		Args:   []string{"network"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainNewPools(ctx, a[0], p)
		},
	},
	{
		Name:   "onchain-all-new-pools",
		Group:  "onchain",
		Method: "GetOnchainAllNewPools",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainAllNewPools(ctx, p)
		},
	},
	{
		Name:   "onchain-search-pools",
		Group:  "onchain",
		Method: "SearchOnchainPools",
		Call: func(ctx context.Context, c *coingecko.Client, _ []string, p *coingecko.Params) (any, error) {
			return c.SearchOnchainPools(ctx, p)
		},
	},
	{
		Name:   "onchain-token-pools",
		Group:  "onchain",
		Method: "GetOnchainTokenPools",
		Args:   []string{"network", "token_address"},
		Call: func(ctx context.Context, c *coingecko.Client, a []string, p *coingecko.Params) (any, error) {
			return c.GetOnchainTokenPools(ctx, a[0], a[1], p)
		},
	},
}
