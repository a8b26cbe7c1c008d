package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"natid/pkg/requestcontext"
)

func TestClientIPFromRequest(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:1234", "203.0.113.7"},
		{"single forwarded", map[string]string{"X-Forwarded-For": " 203.0.113.7 "}, "", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.2:1234", "198.51.100.4"},
		{"remote ipv4", nil, "192.0.2.1:5555", "192.0.2.1"},
		{"remote ipv6", nil, "[::1]:5555", "::1"},
		{"no information", nil, "", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIPFromRequest(req))
		})
	}
}

func TestDescribeUserAgent(t *testing.T) {
	assert.Equal(t, "unknown", DescribeUserAgent(""))

	firefox := DescribeUserAgent("Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")
	assert.Contains(t, firefox, "Firefox")
	assert.Contains(t, firefox, " on ")

	assert.NotEmpty(t, DescribeUserAgent("curl/8.4.0"))
}

func TestClientMetadataMiddleware(t *testing.T) {
	var ip, client string
	h := ClientMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip = requestcontext.ClientIP(r.Context())
		client = requestcontext.Client(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.9:80"
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.9", ip)
	assert.Contains(t, client, "Firefox")
}
