package main

import (
	"flag"
	"os"
	"time"

	"github.com/citizenlabsgr/elections-api/internal/service"
	"github.com/citizenlabsgr/elections-api/lib/configutil"
	"github.com/citizenlabsgr/elections-api/lib/scrapers/mvic"
	"github.com/citizenlabsgr/elections-api/lib/serviceutil"

	"github.com/gin-gonic/gin"
)

type Config struct {
	Port int `json:"port"`
	// limit on a single lookup, 0 means unbounded
	LookupTimeoutSeconds int         `json:"lookup_timeout_seconds"`
	Portal               mvic.Config `json:"portal"`
}

var defaultConfig = Config{
	Port:                 8000,
	LookupTimeoutSeconds: 30,
}

func readConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if os.IsNotExist(err) {
		return defaultConfig, nil
	}
	if err != nil {
		return Config{}, err
	}
	if cfg.Port == 0 {
		cfg.Port = defaultConfig.Port
	}
	return cfg, nil
}

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	configPath := flag.String("config", "config.json5", "Path to the json5 config file.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := readConfig(*configPath)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}

	client, err := mvic.NewClient(cfg.Portal.ClientOptions())
	if err != nil {
		serviceutil.Fatal("init mvic client", err)
	}

	if !*verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	svc := service.NewService(client, service.Options{
		LookupTimeout: time.Duration(cfg.LookupTimeoutSeconds) * time.Second,
	})

	err = serviceutil.StartHttpServer(ctx, cfg.Port, svc.Router())
	if err != nil {
		serviceutil.Fatal("serve http", err)
	}
}
