package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ApiError_Error(t *testing.T) {
	testCases := []struct {
		name   string
		err    *ApiError
		expect string
	}{
		{
			name: "source error",
			err: &ApiError{
				Stage:     STAGE_REQUEST,
				Type:      TYPE_IO,
				SourceErr: fmt.Errorf("connection reset"),
				RequestId: "req-1",
			},
			expect: "request req-1 to iNaturalist failed during 'request' stage with error type 'io', httpStatus: '0'; original err: connection reset",
		},
		{
			name: "body only",
			err: &ApiError{
				Stage:          STAGE_AFTER_REQUEST,
				Type:           TYPE_HTTP_STATUS,
				Body:           []byte(`{"error":"nope"}`),
				HttpStatusCode: 401,
				RequestId:      "req-2",
			},
			expect: `request req-2 to iNaturalist failed during 'after-request' stage with error type 'not-ok-http-status', httpStatus: '401'; original err: {"error":"nope"}`,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.err.Error())
		})
	}
}

func Test_ApiError_Is(t *testing.T) {
	var err error = &ApiError{Type: TYPE_IO}
	assert.True(t, errors.Is(err, &ApiError{}))
	assert.True(t, errors.Is(errors.Join(err), &ApiError{}))
	assert.False(t, errors.Is(fmt.Errorf("plain"), &ApiError{}))
}

func Test_NewValidationError(t *testing.T) {
	err := NewValidationError("missing %s", "endpoint")
	assert.Equal(t, TYPE_INVALID_DATA, err.Type)
	assert.Equal(t, STAGE_BEFORE_REQUEST, err.Stage)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "missing endpoint")
}

func Test_NewEncodingError(t *testing.T) {
	err := NewEncodingError(42)
	assert.Equal(t, TYPE_ENCODING_NOT_SUPPORTED, err.Type)
	assert.ErrorIs(t, err, ErrEncodingNotSupported)
	assert.Contains(t, err.Error(), "int")
}
