package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-skill/config"
	v1 "weather-skill/internal/controllers/http/v1"
	"weather-skill/internal/repositories"
	"weather-skill/internal/services/answer"
	"weather-skill/internal/timezone"
	"weather-skill/pkg/httpserver"
	"weather-skill/pkg/observe"
)

// @title Weather Skill API
// @version 1.0.0
// @description Answers spoken weather questions in German: a free-text time phrase plus a city name
// @description is resolved against a multi-horizon forecast into a single natural-language sentence.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Weather
// @tag.description Weather question answering
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	writers := []io.Writer{os.Stdout}
	if cnf.SentryDSN != "" {
		hook := observe.NewSentryHook(cnf.AppZone, cnf.AppName, 0, cnf.AppZone != "prod", cnf.SentryDSN)
		writers = append(writers, hook)
	}

	l := observe.NewZapLogger(cnf.AppName, writers...)

	app := httpserver.InitFiberServer(cnf.AppName)

	tz, err := timezone.NewService()
	if err != nil {
		l.Warning("timezone lookup unavailable, falling back to server zone", map[string]any{"err": err.Error()})
	}

	geocoder := repositories.NewNominatimGeocoder(cnf.Geocoder.BaseURL, l)
	forecasts := repositories.InitForecastRepository(cnf, l)

	homeLat, homeLon := cnf.Home.Lat, cnf.Home.Lon
	if cnf.Home.City != "" {
		lat, lon, err := geocoder.Geocode(ctx, cnf.Home.City)
		if err != nil {
			l.Warning("cannot resolve home city, using configured coordinates", map[string]any{
				"city": cnf.Home.City,
				"err":  err.Error(),
			})
		} else {
			homeLat, homeLon = lat, lon
		}
	}

	service := answer.NewService(forecasts, geocoder, tz, l, homeLat, homeLon)

	v1.NewRouter(
		app,
		service,
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{"port": cnf.Port})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
