package mvic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewClientDefaults(t *testing.T) {
	client, err := NewClient(Config{}.ClientOptions())
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, DefaultBaseUrl, client.BaseUrl())
	require.Equal(t, DefaultUserAgent, client.userAgent())
	require.Zero(t, client.opts.Timeout)
}

func TestConfigClientOptions(t *testing.T) {
	opts := Config{
		BaseUrl:          "http://localhost:8080/MVIC/",
		UserAgent:        "test-agent",
		CloudflareBypass: true,
		TimeoutSeconds:   45,
	}.ClientOptions()

	require.Equal(t, ClientOptions{
		BaseUrl:          "http://localhost:8080/MVIC/",
		UserAgent:        "test-agent",
		CloudflareBypass: true,
		Timeout:          45 * time.Second,
	}, opts)
}
