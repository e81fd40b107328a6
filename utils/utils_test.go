package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeMobile(t *testing.T) {
	tests := []struct {
		name    string
		country string
		local   string
		want    string
		wantErr bool
	}{
		{name: "india", country: "IN", local: "9876543210", want: "+91 9876543210"},
		{name: "lowercase country", country: "in", local: "9876543210", want: "+91 9876543210"},
		{name: "uae", country: "AE", local: "501234567", want: "+971 501234567"},
		{name: "trims local number", country: "US", local: " 5551234567 ", want: "+1 5551234567"},
		{name: "unknown country", country: "ZZ", local: "123456", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComposeMobile(tt.country, tt.local)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeRequestBodyRedactsCredentials(t *testing.T) {
	body := []byte(`{"email":"a@b.com","password":"hunter22","otp":"123456","new_password":"x","confirm_new_password":"x","code":"123456"}`)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(sanitizeRequestBody(body)), &fields))

	assert.Equal(t, "a@b.com", fields["email"])
	for _, key := range redactedFields {
		assert.Equal(t, "[REDACTED]", fields[key], "field %q must be redacted", key)
	}
}

func TestSanitizeRequestBodyPassesThroughNonJSON(t *testing.T) {
	assert.Equal(t, "not json", sanitizeRequestBody([]byte("not json")))
	assert.Equal(t, "", sanitizeRequestBody(nil))
}
