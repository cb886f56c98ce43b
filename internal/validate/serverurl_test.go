package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanServerURL_Normalizes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare host gets https", "host.example.com", "https://host.example.com"},
		{"http preserved", "http://host.example.com", "http://host.example.com"},
		{"http with port preserved", "http://host.example.com:8080", "http://host.example.com:8080"},
		{"https with port", "https://host.example.com:443", "https://host.example.com:443"},
		{"localhost allowed without dot", "localhost", "https://localhost"},
		{"localhost with port", "localhost:8080", "https://localhost:8080"},
		{"path is dropped", "https://host.example.com/some/path?q=1", "https://host.example.com"},
		{"path after port is dropped", "host.example.com:8080/path", "https://host.example.com:8080"},
		{"host case preserved", "Host.Example.COM", "https://Host.Example.COM"},
		{"numeric labels pass the shape check", "999.999.999.999", "https://999.999.999.999"},
		{"port zero", "host.example.com:0", "https://host.example.com:0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanServerURL(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanServerURL_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr string
	}{
		{"too long", "https://" + strings.Repeat("a", 510) + ".com", "URL too long (max 512 chars)"},
		{"uppercase scheme", "HTTP://host.example.com", "unsupported scheme 'HTTP'"},
		{"empty host", "https://", "hostname empty"},
		{"empty host with port", "https://:8080", "hostname empty"},
		{"host too long", strings.Repeat("a", 256), "hostname too long (max 255 chars)"},
		{"invalid characters", "host_name.example.com", "hostname contains invalid characters"},
		{"no dot", "a-b", "hostname must contain a dot unless 'localhost'"},
		{"empty port", "host.example.com:", "port is empty"},
		{"port out of range", "host.example.com:99999", "port is not a valid number"},
		{"port not numeric", "host.example.com:nope", "port is not a valid number"},
		{"negative port", "host.example.com:-1", "port is not a valid number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CleanServerURL(tt.in)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCleanServerURL_LengthLimitAppliesToRawInput(t *testing.T) {
	// 512 chars is fine, the prepended scheme does not count.
	host := strings.Repeat("a", 251) + ".com"
	require.Len(t, host, 255)
	in := host + strings.Repeat("/x", 128)
	require.LessOrEqual(t, len(in), 512)

	got, err := CleanServerURL(in)
	require.NoError(t, err)
	assert.Equal(t, "https://"+host, got)
}
