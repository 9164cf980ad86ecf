package parsers

import (
	"net/url"
	"strings"
)

// Params is an insertion-ordered view of query parameters.
// Keys keep the position they were first seen at, later
// duplicates overwrite the value.
type Params struct {
	keys   []string
	values map[string]string
}

func newParams() *Params {
	return &Params{values: map[string]string{}}
}

func (p *Params) set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

func (p *Params) Len() int {
	return len(p.keys)
}

func (p *Params) Map() map[string]string {
	out := make(map[string]string, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// ParseURLParams scans raw for key=value pairs separated by '&' or '?'
// and percent-decodes every value. raw may be a full url,
// a query string with or without the leading '?', or a fragment of one.
// Scanning stops at the first '#'.
//
//	ParseURLParams("?a=1&b=two%20words") // a=1, b="two words"
//	ParseURLParams("?a=1&a=2")           // a=2
//	ParseURLParams("?a=1#top")           // a=1
func ParseURLParams(raw string) *Params {
	params := newParams()
	raw, _, _ = strings.Cut(raw, "#")

	segments := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '&' || r == '?'
	})
	for _, segment := range segments {
		key, value, ok := strings.Cut(segment, "=")
		if !ok || key == "" {
			continue
		}
		params.set(key, decode(value))
	}
	return params
}

// ParseURLParam returns the decoded value of a single key.
func ParseURLParam(raw, key string) (string, bool) {
	return ParseURLParams(raw).Get(key)
}

// decode percent-decodes s without treating '+' as a space.
// Malformed escapes leave the value as-is.
func decode(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
