package market

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ConsoleFormatter provides console output formatting for market data
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatCoinList formats a list of coins for console display
func (f *ConsoleFormatter) FormatCoinList(coins []CoinInfo, options FormatOptions) string {
	if len(coins) == 0 {
		return "No coins found"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\nCoin")
	if len(coins) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d):\n\n", len(coins))

	for i, coin := range coins {
		isLast := i == len(coins)-1
		f.formatCoin(&sb, coin, isLast, options)

		if !isLast && options.ShowDetails {
			sb.WriteString("\u2502\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func (f *ConsoleFormatter) formatCoin(sb *strings.Builder, coin CoinInfo, isLast bool, options FormatOptions) {
	prefix := "\u251c"
	indent := "\u2502   "
	if isLast {
		prefix = "\u2570"
		indent = "    "
	}

	rank := "-"
	if coin.Rank > 0 {
		rank = fmt.Sprintf("#%d", coin.Rank)
	}

	fmt.Fprintf(sb, "%s\u2500\u2500 %-5s %s (%s)  %s  %s\n",
		prefix, rank, coin.Name, coin.Symbol,
		formatAmount(coin.Price, options.VsCurrency),
		formatPercent(coin.Change24h))

	if !options.ShowDetails {
		return
	}

	fmt.Fprintf(sb, "%sMarket cap: %s | Volume: %s\n", indent,
		formatCompact(coin.MarketCap, options.VsCurrency),
		formatCompact(coin.Volume, options.VsCurrency))

	if coin.High24h > 0 || coin.Low24h > 0 {
		fmt.Fprintf(sb, "%s24h range: %s - %s\n", indent,
			formatAmount(coin.Low24h, options.VsCurrency),
			formatAmount(coin.High24h, options.VsCurrency))
	}

	supply := fmt.Sprintf("Supply: %s", formatCompact(coin.CirculatingSupply, ""))
	if coin.MaxSupply > 0 {
		supply += fmt.Sprintf(" / %s", formatCompact(coin.MaxSupply, ""))
	}
	fmt.Fprintf(sb, "%s%s\n", indent, supply)

	if coin.ATH > 0 {
		ath := fmt.Sprintf("ATH: %s (%s)", formatAmount(coin.ATH, options.VsCurrency), formatPercent(coin.ATHChange))
		if !coin.ATHDate.IsZero() {
			ath += fmt.Sprintf(" on %s", coin.ATHDate.Format("2006-01-02"))
		}
		fmt.Fprintf(sb, "%s%s\n", indent, ath)
	}
}

// FormatPrices formats price quotes grouped by coin
func (f *ConsoleFormatter) FormatPrices(prices []Price) string {
	if len(prices) == 0 {
		return "No prices found"
	}

	var sb strings.Builder
	current := ""
	for _, p := range prices {
		if p.ID != current {
			current = p.ID
			fmt.Fprintf(&sb, "%s\n", p.ID)
		}
		fmt.Fprintf(&sb, "  %-16s %s\n", p.Currency, formatNumber(p.Value))
	}
	return sb.String()
}

// FormatGlobal formats global market statistics
func (f *ConsoleFormatter) FormatGlobal(global GlobalInfo, vsCurrency string) string {
	var sb strings.Builder

	sb.WriteString("\nGlobal market:\n\n")
	fmt.Fprintf(&sb, "\u251c\u2500\u2500 Active cryptocurrencies: %d\n", global.ActiveCryptocurrencies)
	fmt.Fprintf(&sb, "\u251c\u2500\u2500 Markets: %d\n", global.Markets)
	fmt.Fprintf(&sb, "\u251c\u2500\u2500 Total market cap: %s (%s)\n",
		formatCompact(global.TotalMarketCap[vsCurrency], vsCurrency),
		formatPercent(global.MarketCapChange24h))
	fmt.Fprintf(&sb, "\u251c\u2500\u2500 24h volume: %s\n", formatCompact(global.TotalVolume[vsCurrency], vsCurrency))

	dominance := topShares(global.MarketCapPercentage, 3)
	fmt.Fprintf(&sb, "\u2570\u2500\u2500 Dominance: %s\n", strings.Join(dominance, ", "))

	if !global.UpdatedAt.IsZero() {
		fmt.Fprintf(&sb, "\nUpdated %s\n", global.UpdatedAt.Format("2006-01-02 15:04 MST"))
	}
	return sb.String()
}

// FormatTrending formats the trending coins
func (f *ConsoleFormatter) FormatTrending(coins []TrendingCoin) string {
	if len(coins) == 0 {
		return "No trending coins"
	}

	var sb strings.Builder
	sb.WriteString("\nTrending:\n\n")
	for i, coin := range coins {
		prefix := "\u251c"
		if i == len(coins)-1 {
			prefix = "\u2570"
		}
		rank := "unranked"
		if coin.Rank > 0 {
			rank = fmt.Sprintf("#%d", coin.Rank)
		}
		fmt.Fprintf(&sb, "%s\u2500\u2500 %s (%s) %s\n", prefix, coin.Name, coin.Symbol, rank)
	}
	return sb.String()
}

// FormatSnapshot formats a combined market snapshot
func (f *ConsoleFormatter) FormatSnapshot(snapshot *Snapshot, options FormatOptions) string {
	var sb strings.Builder

	sb.WriteString(f.FormatGlobal(snapshot.Global, options.VsCurrency))
	sb.WriteString(f.FormatCoinList(snapshot.Top, FormatOptions{VsCurrency: options.VsCurrency}))
	sb.WriteString(f.FormatTrending(snapshot.Trending))
	sb.WriteString("\n")

	for _, failed := range snapshot.Failed {
		fmt.Fprintf(&sb, "Warning: %s\n", failed.Error())
	}
	return sb.String()
}

// FormatFields formats a flat object as sorted key/value lines
func (f *ConsoleFormatter) FormatFields(title string, fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s:\n\n", title)
	for i, k := range keys {
		prefix := "\u251c"
		if i == len(keys)-1 {
			prefix = "\u2570"
		}
		fmt.Fprintf(&sb, "%s\u2500\u2500 %s: %v\n", prefix, k, fields[k])
	}
	return sb.String()
}

// topShares returns the n largest entries as "BTC 52.1%"
func topShares(shares map[string]float64, n int) []string {
	keys := make([]string, 0, len(shares))
	for k := range shares {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if shares[keys[i]] != shares[keys[j]] {
			return shares[keys[i]] > shares[keys[j]]
		}
		return keys[i] < keys[j]
	})

	out := make([]string, 0, n)
	for _, k := range keys[:min(n, len(keys))] {
		out = append(out, fmt.Sprintf("%s %.1f%%", strings.ToUpper(k), shares[k]))
	}
	return out
}

func formatAmount(v float64, currency string) string {
	return strings.TrimSpace(formatNumber(v) + " " + strings.ToUpper(currency))
}

func formatNumber(v float64) string {
	switch abs := math.Abs(v); {
	case abs == 0:
		return "0"
	case abs >= 1000:
		return fmt.Sprintf("%.2f", v)
	case abs >= 1:
		return fmt.Sprintf("%.4g", v)
	default:
		return fmt.Sprintf("%.6g", v)
	}
}

// formatCompact abbreviates large values (1.2K, 3.4M, 5.6B, 7.8T)
func formatCompact(v float64, currency string) string {
	units := []struct {
		size   float64
		suffix string
	}{
		{1e12, "T"},
		{1e9, "B"},
		{1e6, "M"},
		{1e3, "K"},
	}

	s := fmt.Sprintf("%.0f", v)
	for _, u := range units {
		if math.Abs(v) >= u.size {
			s = fmt.Sprintf("%.2f%s", v/u.size, u.suffix)
			break
		}
	}
	return strings.TrimSpace(s + " " + strings.ToUpper(currency))
}

func formatPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}
