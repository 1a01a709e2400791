package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/client"
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/MKhiriev/go-sweet-shop/internal/tui"
	"github.com/MKhiriev/go-sweet-shop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("sweet-shop-client", cfg.App.LogPath)
	if !logger.SetLevel(cfg.App.LogLevel) && cfg.App.LogLevel != "" {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}

	if buildVersion == "" {
		buildVersion = cfg.App.Version
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	shopAdapter, err := adapter.NewHTTPShopAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create shop adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(storages, shopAdapter, log)

	ui, err := tui.New(services, cfg.Workers.RefreshInterval, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, storages, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
