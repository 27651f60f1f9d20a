package coingecko

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	const base = "https://api.coingecko.com/api/v3/"

	tests := []struct {
		name         string
		path         string
		params       *Params
		pathHasQuery bool
		want         string
	}{
		{
			name: "no params",
			path: "ping",
			want: base + "ping",
		},
		{
			name:   "empty params",
			path:   "ping",
			params: NewParams(),
			want:   base + "ping",
		},
		{
			name:   "single param",
			path:   "coins/markets",
			params: NewParams().Set("vs_currency", "usd"),
			want:   base + "coins/markets?vs_currency=usd",
		},
		{
			name: "insertion order kept",
			path: "coins/markets",
			params: NewParams().
				Set("vs_currency", "usd").
				Set("per_page", 50).
				Set("sparkline", false),
			want: base + "coins/markets?vs_currency=usd&per_page=50&sparkline=false",
		},
		{
			name:         "path with query",
			path:         "coins/bitcoin/ohlc?vs_currency=usd&days=7",
			params:       NewParams().Set("precision", 2),
			pathHasQuery: true,
			want:         base + "coins/bitcoin/ohlc?vs_currency=usd&days=7&precision=2",
		},
		{
			name:         "path with query and no params",
			path:         "search?query=btc",
			pathHasQuery: true,
			want:         base + "search?query=btc",
		},
		{
			name:   "nil values skipped",
			path:   "coins/list",
			params: NewParams().Set("include_platform", nil).Set("status", "active"),
			want:   base + "coins/list?status=active",
		},
		{
			name:   "only nil values",
			path:   "coins/list",
			params: NewParams().Set("include_platform", nil),
			want:   base + "coins/list",
		},
		{
			name:   "values are not escaped",
			path:   "simple/price",
			params: NewParams().Set("ids", "bitcoin,ethereum"),
			want:   base + "simple/price?ids=bitcoin,ethereum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildURL(base, tt.path, tt.params, tt.pathHasQuery)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "??")
			assert.NotContains(t, got, "&&")
		})
	}
}

func TestParams_SetKeepsPosition(t *testing.T) {
	p := NewParams().Set("a", 1).Set("b", 2).Set("a", 3)

	assert.Equal(t, []string{"a", "b"}, p.Keys())
	assert.Equal(t, "a=3&b=2", p.Encode())
}

func TestParams_Del(t *testing.T) {
	p := NewParams().Set("a", 1).Set("b", 2).Set("c", 3)
	p.Del("b")
	p.Del("missing")

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "a=1&c=3", p.Encode())

	_, ok := p.Get("b")
	assert.False(t, ok)
}

func TestParams_Nil(t *testing.T) {
	var p *Params

	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Keys())
	assert.Equal(t, "", p.Encode())
	_, ok := p.Get("a")
	assert.False(t, ok)

	c := p.Clone()
	require.NotNil(t, c)
	c.Set("a", 1)
	assert.Equal(t, 1, c.Len())
}

func TestParams_CloneIsolation(t *testing.T) {
	orig := NewParams().Set("page", 1)
	c := orig.Clone()
	c.Set("page", 2).Set("per_page", 10)

	v, _ := orig.Get("page")
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, orig.Len())
}

func TestFormatValue(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "usd", "usd"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 250, "250"},
		{"int64", int64(1700000000), "1700000000"},
		{"uint", uint(7), "7"},
		{"float", 1.5, "1.5"},
		{"whole float", 2.0, "2"},
		{"string slice", []string{"bitcoin", "ethereum"}, "bitcoin,ethereum"},
		{"time", ts, "1704067200"},
		{"stringer", time.Duration(0), "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.value))
		})
	}
}

func TestParams_Normalized(t *testing.T) {
	p := NewParams().
		Set("ids", " bitcoin, ethereum ").
		Set("vs_currencies", []string{"usd", " eur"}).
		Set("order", "market cap desc")

	n := p.normalized()

	ids, _ := n.Get("ids")
	assert.Equal(t, "bitcoin,ethereum", ids)
	vs, _ := n.Get("vs_currencies")
	assert.Equal(t, "usd,eur", vs)
	order, _ := n.Get("order")
	assert.Equal(t, "market cap desc", order, "only list parameters are stripped")

	orig, _ := p.Get("ids")
	assert.Equal(t, " bitcoin, ethereum ", orig, "caller params must not change")
}

func TestWith(t *testing.T) {
	caller := NewParams().Set("include_market_cap", true)
	p := with(caller, "ids", "bitcoin", "vs_currencies", "usd")

	assert.Equal(t, "include_market_cap=true&ids=bitcoin&vs_currencies=usd", p.Encode())
	assert.Equal(t, 1, caller.Len())

	// positional value replaces a bag value in place
	caller.Set("ids", "dogecoin")
	p = with(caller, "ids", "bitcoin")
	assert.Equal(t, "include_market_cap=true&ids=bitcoin", p.Encode())
}
