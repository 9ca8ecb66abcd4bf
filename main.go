package main

import (
	"context"
	"flag"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/gitjits/geodata/internal/config"
	"github.com/gitjits/geodata/internal/infrastructure/providers"
	"github.com/gitjits/geodata/internal/infrastructure/repository"
	"github.com/gitjits/geodata/internal/present/rest"
	"github.com/gitjits/geodata/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	ctx := context.Background()

	shutdownTracer, err := providers.SetupTracer(ctx, conf.Server)
	if err != nil {
		panic("failed to set up tracing: " + err.Error())
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			slog.Error("tracer shutdown failed",
				slog.String("error", err.Error()),
				slog.String("module", "main"),
			)
		}
	}()

	store := providers.NewDatastore(conf.Server)
	defer store.Close(ctx)

	// Unique indexes back the application-level uniqueness checks. The
	// store connects lazily, so a cold database only degrades this into
	// a warning instead of blocking startup.
	if err := store.EnsureIndexes(ctx); err != nil {
		slog.Warn("could not ensure datastore indexes",
			slog.String("error", err.Error()),
			slog.String("module", "main"),
		)
	}

	entityCache, err := providers.NewCache(conf.Server)
	if err != nil {
		panic("failed to set up cache: " + err.Error())
	}

	countryRepo := repository.NewCountryRepository(store)
	stateRepo := repository.NewStateRepository(store)
	cityRepo := repository.NewCityRepository(store)
	parkRepo := repository.NewParkRepository(store)

	countries := usecase.NewCountryUsecase(countryRepo, entityCache)
	states := usecase.NewStateUsecase(stateRepo, countryRepo, entityCache)
	cities := usecase.NewCityUsecase(cityRepo, entityCache)
	parks := usecase.NewParkUsecase(parkRepo, entityCache)
	stats := usecase.NewStatsUsecase(countries, states, cities, parks, conf.Server.MongoDatabase)

	handler := rest.NewHandler(countries, states, cities, parks, stats)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("geodata"))
	}

	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
}
