package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/block/inaturalist-go/errors"
	"github.com/block/inaturalist-go/logger"
	"github.com/block/inaturalist-go/parsers"
	"github.com/block/inaturalist-go/rate"
	"github.com/block/inaturalist-go/types"
)

const (
	DefaultBaseUrl = "https://api.inaturalist.org"

	contentTypeJson = "application/json"
)

// Sender issues one request descriptor over http and decodes the JSON response.
type Sender struct {
	baseUrl    string
	httpClient *http.Client
	limiter    rate.Limiter
	logger     logger.Logger
}

func NewSender(
	baseUrl string,
	httpClient *http.Client,
	limiter rate.Limiter,
	logger logger.Logger,
) *Sender {
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}
	if limiter == nil {
		limiter = rate.NoopLimiter{}
	}
	return &Sender{
		baseUrl:    baseUrl,
		httpClient: httpClient,
		limiter:    limiter,
		logger:     logger,
	}
}

func (s *Sender) Send(ctx context.Context, r *types.Request) (*types.Response, *errors.ApiError) {
	res, err := s.send(ctx, r)
	if err != nil {
		err.RequestId = r.ID
	}
	return res, err
}

func (s *Sender) send(ctx context.Context, r *types.Request) (*types.Response, *errors.ApiError) {
	endpoint, apiErr := BuildUrl(s.baseUrl, r)
	if apiErr != nil {
		return nil, apiErr
	}

	var body io.Reader
	if r.Data != nil {
		data, jsonErr := json.Marshal(r.Data)
		if jsonErr != nil {
			return nil, &errors.ApiError{
				Stage:     errors.STAGE_BEFORE_REQUEST,
				Type:      errors.TYPE_JSON_PARSE,
				SourceErr: jsonErr,
			}
		}
		body = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(r.Method), endpoint, body)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	for k, v := range r.Headers.Clone() {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.Header.Set(types.HeaderContentType, contentTypeJson)
	}
	req.Header.Set(types.HeaderAccept, contentTypeJson)

	s.limiter.Limit(req)
	s.logger.Debugf("api: %s %s (request %s)", req.Method, endpoint, r.ID)

	res, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}
	defer func() { _ = res.Body.Close() }()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_IO,
			Body:           resBody,
			HttpStatusCode: res.StatusCode,
			Status:         res.Status,
			SourceErr:      err,
		}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_HTTP_STATUS,
			Body:           resBody,
			HttpStatusCode: res.StatusCode,
			Status:         res.Status,
		}
	}

	out := &types.Response{
		StatusCode: res.StatusCode,
		Status:     res.Status,
		Header:     res.Header,
		Body:       resBody,
	}
	if len(bytes.TrimSpace(resBody)) > 0 {
		if jsonErr := json.Unmarshal(resBody, &out.Data); jsonErr != nil {
			return nil, &errors.ApiError{
				Stage:          errors.STAGE_AFTER_REQUEST,
				Type:           errors.TYPE_JSON_PARSE,
				SourceErr:      jsonErr,
				Body:           resBody,
				HttpStatusCode: res.StatusCode,
				Status:         res.Status,
			}
		}
	}
	return out, nil
}

// BuildUrl returns base/version/endpoint followed by the encoded Params
// and, for v2 requests, the structured "fields" parameter:
//
//	https://api.inaturalist.org/v2/users/me?fields=(login:!t)
//	https://api.inaturalist.org/v2/observations?taxon_id=3&fields=(id:!t)
//
// The fields value is appended verbatim, the API parses it with a fixed grammar.
func BuildUrl(baseUrl string, r *types.Request) (string, *errors.ApiError) {
	endpoint := strings.TrimRight(baseUrl, "/") + "/" +
		string(r.ApiVersion) + "/" +
		strings.TrimLeft(r.Endpoint, "/")

	query := EncodeParams(r.Params)
	if query != "" {
		endpoint += "?" + query
	}

	if r.ApiVersion == types.V2 && r.Fields != "" {
		fields, err := parsers.EncodeStructured(r.Fields)
		if err != nil {
			if apiErr, ok := err.(*errors.ApiError); ok {
				return "", apiErr
			}
			return "", errors.NewEncodingError(r.Fields)
		}
		sep := "?"
		if query != "" {
			sep = "&"
		}
		endpoint += sep + "fields=" + fields
	}
	return endpoint, nil
}

// EncodeParams builds a query string from params. Keys are sorted,
// slices are comma-joined and nested maps use bracketed keys:
//
//	{"taxon_id": []int{1, 2}, "geo": {"lat": 1.5}}  ->  geo%5Blat%5D=1.5&taxon_id=1%2C2
func EncodeParams(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	flattenParams(values, "", reflect.ValueOf(params))
	return values.Encode()
}

func flattenParams(values url.Values, prefix string, v reflect.Value) {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return
	}

	switch v.Kind() {
	case reflect.Map:
		keys := make([]string, 0, v.Len())
		index := map[string]reflect.Value{}
		for _, k := range v.MapKeys() {
			name := fmt.Sprint(k.Interface())
			keys = append(keys, name)
			index[name] = v.MapIndex(k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := k
			if prefix != "" {
				key = prefix + "[" + k + "]"
			}
			flattenParams(values, key, index[k])
		}
	case reflect.Slice, reflect.Array:
		items := make([]string, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			items = append(items, fmt.Sprint(v.Index(i).Interface()))
		}
		values.Set(prefix, strings.Join(items, ","))
	default:
		values.Set(prefix, fmt.Sprint(v.Interface()))
	}
}
