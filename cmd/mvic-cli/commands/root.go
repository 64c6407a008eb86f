package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/citizenlabsgr/elections-api/lib/configutil"
	"github.com/citizenlabsgr/elections-api/lib/restyutil"
	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"
	"github.com/citizenlabsgr/elections-api/lib/telemetry"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	baseUrl    string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logs and dump portal requests to <dev_state>/resty/mvic.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.json5", "Path to a json5 file holding the portal config.")
	rootCmd.PersistentFlags().StringVar(&baseUrl, "base-url", "", "Override the portal url.")
}

var rootCmd = &cobra.Command{
	Use:   "mvic-cli",
	Short: "mvic-cli looks up voter registrations on the Michigan Voter Information Center.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		telemetry.InitSlog(verbose)
		err := telemetry.SetupFromEnv(cmd.Context(), "mvic-cli")
		if err != nil {
			return fmt.Errorf("setup telemetry: %w", err)
		}
		if !verbose {
			return nil
		}
		out, err := restyutil.NewFilesystemOutput("<dev_state>/resty/mvic")
		if err != nil {
			slog.Warn("http dumps disabled", "err", err)
			return nil
		}
		mvic.SetRestyInstrumentOutput(out)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return telemetry.Shutdown(context.Background())
	},
}

type Config struct {
	Portal mvic.Config `json:"portal"`
}

func newClient() (*mvic.Client, error) {
	cfg, err := configutil.ReadConfig[Config](configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	opts := cfg.Portal.ClientOptions()
	if baseUrl != "" {
		opts.BaseUrl = baseUrl
	}
	return mvic.NewClient(opts)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
