package main

import (
	"context"
	"log/slog"

	"github.com/citizenlabsgr/elections-api/lib/restyutil"
	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"
	"github.com/citizenlabsgr/elections-api/lib/serviceutil"
	"github.com/citizenlabsgr/elections-api/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	if verbose {
		slog.DebugContext(ctx, "verbose logging enabled")
	}

	err := telemetry.SetupFromEnv(ctx, "mvic-server")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	go func() {
		<-ctx.Done()
		err := telemetry.Shutdown(context.Background())
		if err != nil {
			slog.Error("failed to shut down telemetry", "err", err)
		}
	}()
	telemetry.InstrumentPerfStats(ctx)

	if !verbose {
		return
	}

	out, err := restyutil.NewFilesystemOutput("<dev_state>/resty/mvic")
	if err != nil {
		slog.WarnContext(ctx, "http dumps disabled", "err", err)
		return
	}
	mvic.SetRestyInstrumentOutput(out)
}
