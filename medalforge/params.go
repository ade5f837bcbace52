package medalforge

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value interface{}
}

// Params is an ordered list of query parameters. Unlike url.Values it
// keeps insertion order when encoded.
type Params []Param

// Add appends key=value. A nil value (or nil pointer) is dropped on encode.
func (p Params) Add(key string, value interface{}) Params {
	return append(p, Param{Key: key, Value: value})
}

// Encode returns the URL-encoded query string in insertion order.
func (p Params) Encode() string {
	var buf strings.Builder
	for _, param := range p {
		s, ok := formatParam(param.Value)
		if !ok {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(url.QueryEscape(param.Key))
		buf.WriteByte('=')
		buf.WriteString(url.QueryEscape(s))
	}
	return buf.String()
}

// CSV joins values with commas. It returns nil for an empty list so the
// parameter is dropped.
func CSV[T ~string](values []T) interface{} {
	if len(values) == 0 {
		return nil
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}

func formatParam(v interface{}) (string, bool) {
	if v == nil {
		return "", false
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "", false
		}
		v = rv.Elem().Interface()
	}

	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case []string:
		s := CSV(v)
		if s == nil {
			return "", false
		}
		return s.(string), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// ListOptions filters medal and badge listings.
type ListOptions struct {
	IncludeProgress *bool
	OnlyUnlocked    *bool
	RarityFilter    []Rarity
}

// params encodes opts in the order includeProgress, onlyUnlocked, rarityFilter.
func (opts *ListOptions) params() Params {
	if opts == nil {
		return nil
	}
	return Params{}.
		Add("includeProgress", opts.IncludeProgress).
		Add("onlyUnlocked", opts.OnlyUnlocked).
		Add("rarityFilter", CSV(opts.RarityFilter))
}
