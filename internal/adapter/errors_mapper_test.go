package adapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDetail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "string", raw: `" Sweet not found "`, want: "Sweet not found"},
		{name: "validation list", raw: `[{"msg":"field required"},{"msg":"value is not a valid email address"}]`, want: "field required; value is not a valid email address"},
		{name: "list with blanks", raw: `[{"msg":""},{"loc":["body"]}]`, want: ""},
		{name: "object", raw: `{"x":1}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDetail(json.RawMessage(tt.raw)))
		})
	}
}

func TestSentinelFor(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.ErrorIs(t, sentinelFor(tt.status), tt.want)
		})
	}
}

func TestAPIError_ErrorAndReason(t *testing.T) {
	withDetail := &APIError{Status: 400, Detail: "bad name", Message: "ignored", err: ErrBadRequest}
	assert.Equal(t, "bad name", withDetail.Reason())
	assert.Contains(t, withDetail.Error(), "http 400")
	assert.Contains(t, withDetail.Error(), "bad name")

	onlyMessage := &APIError{Status: 500, Message: "boom", err: ErrInternalServerError}
	assert.Equal(t, "boom", onlyMessage.Reason())

	bare := &APIError{Status: 502, err: ErrBadGateway}
	assert.Empty(t, bare.Reason())
	assert.Contains(t, bare.Error(), http.StatusText(502))

	transport := mapTransportError(errors.New("connection refused"))
	assert.ErrorIs(t, transport, ErrTransport)
	assert.Contains(t, transport.Error(), "connection refused")
}

func TestNewAPIError_WrapsStatusSentinel(t *testing.T) {
	err := NewAPIError(401, "Could not validate credentials", "")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Could not validate credentials", err.Reason())

	assert.ErrorIs(t, NewAPIError(418, "", ""), ErrUnexpectedStatus)
}

func TestNewTransportError(t *testing.T) {
	err := NewTransportError(errors.New("connection refused"))

	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, 0, err.Status)
	assert.Equal(t, "connection refused", err.Reason())
}
