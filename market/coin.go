package market

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ErrUnexpectedPayload is returned when a response does not have the
// expected JSON shape.
var ErrUnexpectedPayload = errors.New("unexpected response payload")

// CoinInfo contains the market data of one coin used for filtering and display
type CoinInfo struct {
	ID                string
	Symbol            string
	Name              string
	Rank              int // 0 when unranked
	Price             float64
	MarketCap         float64
	Volume            float64
	High24h           float64
	Low24h            float64
	Change24h         float64 // percent
	CirculatingSupply float64
	TotalSupply       float64
	MaxSupply         float64 // 0 when uncapped
	ATH               float64
	ATHChange         float64 // percent below the all-time high
	ATHDate           time.Time
	LastUpdated       time.Time
}

// CoinInfoFromRow converts one row of the coins/markets response
func CoinInfoFromRow(row map[string]any) CoinInfo {
	return CoinInfo{
		ID:                stringField(row, "id"),
		Symbol:            strings.ToUpper(stringField(row, "symbol")),
		Name:              stringField(row, "name"),
		Rank:              int(numberField(row, "market_cap_rank")),
		Price:             numberField(row, "current_price"),
		MarketCap:         numberField(row, "market_cap"),
		Volume:            numberField(row, "total_volume"),
		High24h:           numberField(row, "high_24h"),
		Low24h:            numberField(row, "low_24h"),
		Change24h:         numberField(row, "price_change_percentage_24h"),
		CirculatingSupply: numberField(row, "circulating_supply"),
		TotalSupply:       numberField(row, "total_supply"),
		MaxSupply:         numberField(row, "max_supply"),
		ATH:               numberField(row, "ath"),
		ATHChange:         numberField(row, "ath_change_percentage"),
		ATHDate:           timeField(row, "ath_date"),
		LastUpdated:       timeField(row, "last_updated"),
	}
}

// CoinsFromMarkets converts a coins/markets response
func CoinsFromMarkets(v any) ([]CoinInfo, error) {
	rows, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: markets response is %T, want array", ErrUnexpectedPayload, v)
	}

	coins := make([]CoinInfo, 0, len(rows))
	for _, r := range rows {
		row, ok := r.(map[string]any)
		if !ok {
			continue
		}
		coins = append(coins, CoinInfoFromRow(row))
	}
	return coins, nil
}

// Price is the quote of one coin in one currency
type Price struct {
	ID       string
	Currency string
	Value    float64
}

// PricesFromResponse flattens a simple/price response, sorted by coin and
// currency. Extra fields such as usd_market_cap are kept as their own
// currency key.
func PricesFromResponse(v any) ([]Price, error) {
	byCoin, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: price response is %T, want object", ErrUnexpectedPayload, v)
	}

	var prices []Price
	for id, quotes := range byCoin {
		q, ok := quotes.(map[string]any)
		if !ok {
			continue
		}
		for currency, value := range q {
			prices = append(prices, Price{
				ID:       id,
				Currency: currency,
				Value:    toFloat(value),
			})
		}
	}

	sort.Slice(prices, func(i, j int) bool {
		if prices[i].ID != prices[j].ID {
			return prices[i].ID < prices[j].ID
		}
		return prices[i].Currency < prices[j].Currency
	})
	return prices, nil
}

// GlobalInfo contains global market statistics
type GlobalInfo struct {
	ActiveCryptocurrencies int
	Markets                int
	TotalMarketCap         map[string]float64
	TotalVolume            map[string]float64
	MarketCapPercentage    map[string]float64
	MarketCapChange24h     float64
	UpdatedAt              time.Time
}

// GlobalFromData converts the unwrapped global response
func GlobalFromData(v any) (GlobalInfo, error) {
	data, ok := v.(map[string]any)
	if !ok {
		return GlobalInfo{}, fmt.Errorf("%w: global data is %T, want object", ErrUnexpectedPayload, v)
	}

	info := GlobalInfo{
		ActiveCryptocurrencies: int(numberField(data, "active_cryptocurrencies")),
		Markets:                int(numberField(data, "markets")),
		TotalMarketCap:         floatMap(data["total_market_cap"]),
		TotalVolume:            floatMap(data["total_volume"]),
		MarketCapPercentage:    floatMap(data["market_cap_percentage"]),
		MarketCapChange24h:     numberField(data, "market_cap_change_percentage_24h_usd"),
	}
	if ts := numberField(data, "updated_at"); ts > 0 {
		info.UpdatedAt = time.Unix(int64(ts), 0).UTC()
	}
	return info, nil
}

// TrendingCoin is one entry of the trending search list
type TrendingCoin struct {
	ID     string
	Name   string
	Symbol string
	Rank   int
	Score  int
}

// TrendingFromResponse converts a search/trending response
func TrendingFromResponse(v any) ([]TrendingCoin, error) {
	body, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: trending response is %T, want object", ErrUnexpectedPayload, v)
	}

	entries, _ := body["coins"].([]any)
	coins := make([]TrendingCoin, 0, len(entries))
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		item, ok := entry["item"].(map[string]any)
		if !ok {
			continue
		}
		coins = append(coins, TrendingCoin{
			ID:     stringField(item, "id"),
			Name:   stringField(item, "name"),
			Symbol: strings.ToUpper(stringField(item, "symbol")),
			Rank:   int(numberField(item, "market_cap_rank")),
			Score:  int(numberField(item, "score")),
		})
	}
	return coins, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func numberField(m map[string]any, key string) float64 {
	return toFloat(m[key])
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func timeField(m map[string]any, key string) time.Time {
	s := stringField(m, key)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func floatMap(v any) map[string]float64 {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(m))
	for k, val := range m {
		out[k] = toFloat(val)
	}
	return out
}
