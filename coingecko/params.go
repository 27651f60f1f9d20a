package coingecko

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Params is an ordered set of query parameters.
//
// Keys keep the position of their first insertion; setting an existing key
// replaces its value in place. Read methods treat a nil *Params as an empty
// set, so operations accept nil when no extra parameters are needed.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams creates an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Set stores value under key and returns p for chaining.
func (p *Params) Set(key string, value any) *Params {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// Del removes key from the set.
func (p *Params) Del(key string) {
	if p == nil {
		return
	}
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Clone returns an independent copy. Cloning nil yields an empty set.
func (p *Params) Clone() *Params {
	c := NewParams()
	if p == nil {
		return c
	}
	for _, k := range p.keys {
		c.Set(k, p.values[k])
	}
	return c
}

// Encode serializes the parameters as key=value pairs joined by '&'.
// Values are not percent-encoded and nil values are skipped.
func (p *Params) Encode() string {
	if p == nil {
		return ""
	}

	var sb strings.Builder
	for _, k := range p.keys {
		v := p.values[k]
		if v == nil {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(formatValue(v))
	}
	return sb.String()
}

// listParams hold comma-separated identifier lists; whitespace inside them is
// dropped before a request is built.
var listParams = []string{"ids", "vs_currencies", "contract_addresses"}

// normalized returns a copy of p with list parameters stripped of whitespace.
func (p *Params) normalized() *Params {
	c := p.Clone()
	for _, k := range listParams {
		v, ok := c.values[k]
		if !ok {
			continue
		}
		switch val := v.(type) {
		case string:
			c.values[k] = stripSpaces(val)
		case []string:
			c.values[k] = stripSpaces(strings.Join(val, ","))
		}
	}
	return c
}

// with clones params and sets the given key/value pairs on the copy.
func with(params *Params, kv ...any) *Params {
	c := params.Clone()
	for i := 0; i+1 < len(kv); i += 2 {
		c.Set(kv[i].(string), kv[i+1])
	}
	return c
}

// BuildURL joins baseURL and path and appends the encoded parameters.
// pathHasQuery tells whether path already carries a "?key=value" fragment.
// An empty parameter set returns baseURL+path unchanged.
func BuildURL(baseURL, path string, params *Params, pathHasQuery bool) string {
	u := baseURL + path

	query := params.Encode()
	if query == "" {
		return u
	}

	if pathHasQuery {
		return u + "&" + query
	}
	return u + "?" + query
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []string:
		return strings.Join(val, ",")
	case time.Time:
		return strconv.FormatInt(val.Unix(), 10)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
