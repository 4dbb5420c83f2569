package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/dauletm/pickup-share/config"
	"github.com/dauletm/pickup-share/internal/app"
	"github.com/dauletm/pickup-share/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

// @title        Pickup Share API
// @version      1.0
// @description  Ride coordination backend. Drivers keep a roster of passengers with geocoded pickup addresses and hand passengers off to other drivers through one-time transfer codes.
// @BasePath     /
func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	ctx := context.Background()
	log := logger.InitLogger("", logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		os.Exit(1)
	}

	log = logger.InitLogger(cfg.Server.Name, strings.ToUpper(cfg.Log.Level))

	application, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	if err = application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
