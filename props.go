package interop

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// Props is a flexible property map.
type Props map[string]any

// Int looks up key as an integer. Missing or non-numeric values yield 0.
func (p Props) Int(key string) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case float32:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// String looks up key as a string. Non-string values are formatted with fmt.
func (p Props) String(key string) string {
	v, ok := p[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// HasChanged reports whether the value of any of the given keys differs
// between p and next.
func (p Props) HasChanged(next Props, keys ...string) bool {
	for _, k := range keys {
		if !reflect.DeepEqual(p[k], next[k]) {
			return true
		}
	}
	return false
}

// Keys returns the property names in sorted order.
func (p Props) Keys() []string {
	keys := lo.Keys(p)
	slices.Sort(keys)
	return keys
}

// HasExactly reports whether p holds the given keys and nothing else.
func (p Props) HasExactly(keys ...string) bool {
	if len(p) != len(lo.Uniq(keys)) {
		return false
	}
	return lo.EveryBy(keys, func(k string) bool {
		_, ok := p[k]
		return ok
	})
}

// Clone returns a shallow copy of p.
func (p Props) Clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
