package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleFormatter_FormatCoinList(t *testing.T) {
	f := NewConsoleFormatter()

	assert.Equal(t, "No coins found", f.FormatCoinList(nil, FormatOptions{}))

	coins := []CoinInfo{
		{ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Rank: 1, Price: 65000, Change24h: 1.2, MarketCap: 1.28e12, MaxSupply: 21e6, CirculatingSupply: 19.7e6},
		{ID: "mystery", Symbol: "MYS", Name: "Mystery", Price: 0.0001, Change24h: -50},
	}

	out := f.FormatCoinList(coins, FormatOptions{VsCurrency: "usd"})
	assert.Contains(t, out, "Coins (2):")
	assert.Contains(t, out, "#1    Bitcoin (BTC)  65000.00 USD  +1.20%")
	assert.Contains(t, out, "Mystery (MYS)  0.0001 USD  -50.00%")
	assert.NotContains(t, out, "Market cap")

	detailed := f.FormatCoinList(coins[:1], FormatOptions{VsCurrency: "usd", ShowDetails: true})
	assert.Contains(t, detailed, "Coin (1):")
	assert.Contains(t, detailed, "Market cap: 1.28T USD")
	assert.Contains(t, detailed, "Supply: 19.70M / 21.00M")
}

func TestConsoleFormatter_FormatPrices(t *testing.T) {
	f := NewConsoleFormatter()

	out := f.FormatPrices([]Price{
		{ID: "bitcoin", Currency: "eur", Value: 60000},
		{ID: "bitcoin", Currency: "usd", Value: 65000},
	})
	assert.Equal(t, "bitcoin\n  eur              60000.00\n  usd              65000.00\n", out)
}

func TestConsoleFormatter_FormatGlobal(t *testing.T) {
	f := NewConsoleFormatter()

	out := f.FormatGlobal(GlobalInfo{
		ActiveCryptocurrencies: 13000,
		TotalMarketCap:         map[string]float64{"usd": 2.5e12},
		MarketCapPercentage:    map[string]float64{"btc": 52.1, "eth": 16.3, "usdt": 4.2, "bnb": 3.1},
		MarketCapChange24h:     -0.5,
	}, "usd")

	assert.Contains(t, out, "Active cryptocurrencies: 13000")
	assert.Contains(t, out, "Total market cap: 2.50T USD (-0.50%)")
	assert.Contains(t, out, "Dominance: BTC 52.1%, ETH 16.3%, USDT 4.2%")
	assert.NotContains(t, out, "BNB")
}

func TestConsoleFormatter_FormatSnapshot(t *testing.T) {
	f := NewConsoleFormatter()

	out := f.FormatSnapshot(&Snapshot{
		Trending: []TrendingCoin{{Name: "Pepe", Symbol: "PEPE", Rank: 30}},
		Failed:   []SourceError{{Source: "markets", Err: errors.New("rate limited")}},
	}, FormatOptions{VsCurrency: "usd"})

	assert.Contains(t, out, "Pepe (PEPE) #30")
	assert.Contains(t, out, "No coins found")
	assert.Contains(t, out, "Warning: failed to fetch markets: rate limited")
}

func TestConsoleFormatter_FormatFields(t *testing.T) {
	f := NewConsoleFormatter()

	out := f.FormatFields("DeFi", map[string]any{"defi_market_cap": "1.0", "defi_dominance": "3.2"})
	assert.Equal(t, "\nDeFi:\n\n├── defi_dominance: 3.2\n╰── defi_market_cap: 1.0\n", out)
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		value    float64
		currency string
		want     string
	}{
		{0, "", "0"},
		{999, "usd", "999 USD"},
		{1500, "", "1.50K"},
		{2.5e6, "eur", "2.50M EUR"},
		{3e9, "", "3.00B"},
		{1.28e12, "usd", "1.28T USD"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCompact(tt.value, tt.currency))
	}
}
