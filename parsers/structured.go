package parsers

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/block/inaturalist-go/errors"
)

// trueFlag marks a selected field in the v2 "fields" grammar.
const trueFlag = "!t"

// EncodeStructured converts a field selection into the bracketed
// boolean syntax understood by the v2 API:
//
//	EncodeStructured(map[string]any{"a": 1, "b": 2})  // "(a:!t,b:!t)"
//	EncodeStructured([]string{"x", "y"})               // "(x:!t,y:!t)"
//	EncodeStructured("p,q")                            // "(p:!t,q:!t)"
//	EncodeStructured(map[string]any{"user": "login"}) // "(user:!t)"
//	EncodeStructured(map[string]any{"user": []string{"id", "login"}})
//	// "(user:(id:!t,login:!t))"
//
// Map keys are emitted in sorted order. Values of any other shape
// return an error matching errors.ErrEncodingNotSupported.
func EncodeStructured(value any) (string, error) {
	return encode(reflect.ValueOf(value), value)
}

func encode(v reflect.Value, original any) (string, error) {
	v = indirect(v)
	if !v.IsValid() {
		return "", errors.NewEncodingError(original)
	}

	switch v.Kind() {
	case reflect.Map:
		return encodeMap(v, original)
	case reflect.Slice, reflect.Array:
		return encodeSequence(v, original)
	case reflect.String:
		return encodeString(v.String()), nil
	default:
		return "", errors.NewEncodingError(original)
	}
}

func encodeMap(v reflect.Value, original any) (string, error) {
	if v.Type().Key().Kind() != reflect.String {
		return "", errors.NewEncodingError(original)
	}

	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		elem := indirect(v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key())))
		if isComposite(elem) {
			nested, err := encode(elem, original)
			if err != nil {
				return "", err
			}
			pairs = append(pairs, key+":"+nested)
			continue
		}
		pairs = append(pairs, key+":"+trueFlag)
	}
	return "(" + strings.Join(pairs, ",") + ")", nil
}

func encodeSequence(v reflect.Value, original any) (string, error) {
	names := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := indirect(v.Index(i))
		if !elem.IsValid() || isComposite(elem) {
			return "", errors.NewEncodingError(original)
		}
		if elem.Kind() == reflect.String {
			names = append(names, elem.String())
		} else {
			names = append(names, fmt.Sprint(elem.Interface()))
		}
	}
	return joinFlags(names), nil
}

// encodeString splits on commas. Names are kept byte for byte,
// surrounding spaces included.
func encodeString(s string) string {
	return joinFlags(strings.Split(s, ","))
}

func joinFlags(names []string) string {
	if len(names) == 0 {
		return "()"
	}
	return "(" + strings.Join(names, ":"+trueFlag+",") + ":" + trueFlag + ")"
}

func isComposite(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}

// indirect unwraps interfaces and pointers.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
