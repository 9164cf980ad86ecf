package parsers

import (
	"testing"

	"github.com/block/inaturalist-go/errors"

	"github.com/stretchr/testify/assert"
)

type fieldName string

func Test_EncodeStructured(t *testing.T) {
	testCases := []struct {
		name   string
		value  any
		expect string
	}{
		{
			name:   "flat map",
			value:  map[string]any{"a": 1, "b": 2},
			expect: "(a:!t,b:!t)",
		},
		{
			name:   "map keys are sorted",
			value:  map[string]bool{"login": true, "id": true, "name": false},
			expect: "(id:!t,login:!t,name:!t)",
		},
		{
			name:   "string slice",
			value:  []string{"x", "y"},
			expect: "(x:!t,y:!t)",
		},
		{
			name:   "any slice",
			value:  []any{"x", fieldName("y")},
			expect: "(x:!t,y:!t)",
		},
		{
			name:   "comma separated string",
			value:  "p,q",
			expect: "(p:!t,q:!t)",
		},
		{
			name:   "comma separated string keeps spaces",
			value:  "id, login",
			expect: "(id:!t, login:!t)",
		},
		{
			name:   "single string keeps spaces",
			value:  " p",
			expect: "( p:!t)",
		},
		{
			name:   "slice elements keep spaces",
			value:  []string{" p", "q"},
			expect: "( p:!t,q:!t)",
		},
		{
			name:   "single string",
			value:  "login",
			expect: "(login:!t)",
		},
		{
			name:   "named string type",
			value:  fieldName("login"),
			expect: "(login:!t)",
		},
		{
			name: "nested map",
			value: map[string]any{
				"id":   true,
				"user": map[string]any{"login": true, "icon_url": true},
			},
			expect: "(id:!t,user:(icon_url:!t,login:!t))",
		},
		{
			name: "nested slice",
			value: map[string]any{
				"taxon": []string{"name", "rank"},
				"uuid":  "ignored-value",
			},
			expect: "(taxon:(name:!t,rank:!t),uuid:!t)",
		},
		{
			name:   "pointer to map",
			value:  &map[string]int{"a": 1},
			expect: "(a:!t)",
		},
		{
			name:   "nil map value is a scalar",
			value:  map[string]any{"a": nil},
			expect: "(a:!t)",
		},
		{
			name:   "empty map",
			value:  map[string]any{},
			expect: "()",
		},
		{
			name:   "empty slice",
			value:  []string{},
			expect: "()",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := EncodeStructured(tt.value)
			assert.NoError(t, err)
			assert.Equal(t, tt.expect, res)
		})
	}
}

func Test_EncodeStructured_notSupported(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{name: "int", value: 42},
		{name: "float", value: 4.2},
		{name: "bool", value: true},
		{name: "nil", value: nil},
		{name: "struct", value: struct{ A string }{"a"}},
		{name: "non string map keys", value: map[int]bool{1: true}},
		{name: "nested unsupported", value: map[string]any{"a": map[int]bool{1: true}}},
		{name: "composite in sequence", value: []any{"a", []string{"b"}}},
		{name: "nil in sequence", value: []any{"a", nil}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := EncodeStructured(tt.value)
			assert.Equal(t, "", res)
			assert.ErrorIs(t, err, errors.ErrEncodingNotSupported)

			var apiErr *errors.ApiError
			assert.ErrorAs(t, err, &apiErr)
			assert.Equal(t, errors.TYPE_ENCODING_NOT_SUPPORTED, apiErr.Type)
		})
	}
}
