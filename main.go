package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/color-game/palettes/api"
	"github.com/color-game/palettes/config"
	"github.com/color-game/palettes/datastore"
	"github.com/color-game/palettes/migrations"
	"github.com/color-game/palettes/palette"
	"github.com/color-game/palettes/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; use the default one.
		config.Config{}.NewLogger("palettes").Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger("palettes")

	connStr := datastore.BuildDBConnStr(
		cfg.DatabaseHost,
		cfg.DatabasePassword,
		cfg.DatabaseUser,
		cfg.DatabaseName,
		cfg.SSLMode,
	)

	dbConn, dbErr := datastore.NewDB(cfg.DatabaseType, connStr)
	if dbErr != nil {
		logger.Error("failed to connect to database", "error", dbErr)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := migrations.RunMigrations(dbConn, cfg.MigrationsDir, logger.Named("migrations")); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	userRepo, userRepoErr := datastore.NewUserDatabase(dbConn)
	if userRepoErr != nil {
		logger.Error("failed to create user repository", "error", userRepoErr)
		os.Exit(1)
	}

	paletteRepo, paletteRepoErr := datastore.NewPaletteDatabase(dbConn)
	if paletteRepoErr != nil {
		logger.Error("failed to create palette repository", "error", paletteRepoErr)
		os.Exit(1)
	}

	dailyPaletteRepo, dailyPaletteRepoErr := datastore.NewDailyPaletteDatabase(dbConn)
	if dailyPaletteRepoErr != nil {
		logger.Error("failed to create daily palette repository", "error", dailyPaletteRepoErr)
		os.Exit(1)
	}

	preferencesRepo, preferencesRepoErr := datastore.NewPreferencesDatabase(dbConn)
	if preferencesRepoErr != nil {
		logger.Error("failed to create preferences repository", "error", preferencesRepoErr)
		os.Exit(1)
	}

	generator := palette.NewGenerator(palette.NewLockedSource(time.Now().UnixNano()))

	paletteScheduler := scheduler.NewScheduler(dailyPaletteRepo, logger)
	paletteScheduler.Generator = generator

	app := &api.Application{
		Config:           cfg,
		Logger:           logger.Named("api"),
		Generator:        generator,
		UserRepo:         userRepo,
		PaletteRepo:      paletteRepo,
		DailyPaletteRepo: dailyPaletteRepo,
		PreferencesRepo:  preferencesRepo,
		DailyPalettes:    paletteScheduler,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.DailyPalette {
		paletteScheduler.Start(ctx)
		defer paletteScheduler.Stop()
	}

	mux := http.NewServeMux()
	if err := app.Serve(mux); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
