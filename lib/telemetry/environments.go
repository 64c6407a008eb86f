package telemetry

import (
	"context"
	"os"
	"sync"

	"github.com/citizenlabsgr/elections-api/lib/configutil"
)

var setupTestEnvironments = map[string]bool{}
var setupTestLock sync.Mutex

// SetupForTesting sets up telemetry in a testing environment, ensuring that
// it isn't set up more than once per service name.
func SetupForTesting(serviceName string) func() {
	setupTestLock.Lock()
	defer setupTestLock.Unlock()

	if setupTestEnvironments[serviceName] {
		return func() {}
	}
	setupTestEnvironments[serviceName] = true

	InitSlog(true)
	err := SetupFromEnv(context.Background(), serviceName)
	if err != nil {
		panic(err)
	}

	return func() {
		err := Shutdown(context.Background())
		if err != nil {
			panic(err)
		}
	}
}

// SetupFromEnv searches up the filesystem from the cwd to find a file called
// telemetry.json5 and uses it to set up telemetry. Without one, telemetry
// stays disabled.
func SetupFromEnv(ctx context.Context, serviceName string) error {
	config, err := configutil.ReadRecursively[config]("telemetry.json5")
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return Setup(ctx, serviceName, config)
}
