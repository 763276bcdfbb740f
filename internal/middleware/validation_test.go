package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type createRequest struct {
	Name   string  `json:"name" validate:"required"`
	Status string  `json:"status" validate:"required,oneof=active inactive"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

func TestDecodeAndValidate_ValidBody(t *testing.T) {
	body := bytes.NewBufferString(`{"name":"Shoes","status":"active","amount":10}`)
	r := httptest.NewRequest(http.MethodPost, "/", body)

	var req createRequest
	require.NoError(t, DecodeAndValidate(r, &req))
	assert.Equal(t, "Shoes", req.Name)
}

func TestDecodeAndValidate_MalformedJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":`))

	var req createRequest
	err := DecodeAndValidate(r, &req)
	require.Error(t, err)
	assert.Empty(t, FormatValidationErrors(err), "decode errors carry no field details")
}

func TestFormatValidationErrors_ReportsEachField(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/",
		bytes.NewBufferString(`{"status":"paused","amount":-1}`))

	var req createRequest
	err := DecodeAndValidate(r, &req)
	require.Error(t, err)

	fields := FormatValidationErrors(err)
	require.Len(t, fields, 3)

	byField := make(map[string]string, len(fields))
	for _, f := range fields {
		byField[f.Field] = f.Message
	}
	assert.Equal(t, "This field is required", byField["Name"])
	assert.Contains(t, byField["Status"], "active inactive")
	assert.Contains(t, byField["Amount"], "greater than or equal to 0")
}
