package mvic

import (
	"context"
	"testing"
	"time"

	devenv "github.com/citizenlabsgr/elections-api/dev/env"
	"github.com/citizenlabsgr/elections-api/lib/telemetry"

	"github.com/stretchr/testify/require"
)

// TestLiveLookup hits the real portal with the voter configured in
// dev/.state/mvic_config.json5, it is skipped when that file doesn't exist.
func TestLiveLookup(t *testing.T) {
	config, err := devenv.GetStateConfig[devenv.MvicTestConfig]("mvic_config.json5")
	if err != nil {
		t.Skipf("no live portal config: %s", err)
	}

	cleanup := telemetry.SetupForTesting("test:scrapers/mvic")
	defer cleanup()

	ctx, span := tracer.Start(context.Background(), "TestLiveLookup")
	defer span.End()
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	client, err := NewClient(ClientOptions{
		BaseUrl:          config.BaseUrl,
		CloudflareBypass: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	result, err := client.Lookup(ctx, PersonQuery(config.Voter))
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, config.ExpectRegistered, result.Registered)
	if config.ExpectRegistered {
		require.NotEmpty(t, result.Fields)
	}
}
