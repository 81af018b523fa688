package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/wanderkit/travelgate/api"
	"github.com/wanderkit/travelgate/bootstrap"
	"github.com/wanderkit/travelgate/config"
	"github.com/wanderkit/travelgate/log"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	log.Init()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf(ctx, "Failed to load configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf(ctx, "Unknown log level %q, keeping info", cfg.Log.Level)
	}

	log.Infof(ctx, "Starting TravelGate Agent Server...")

	app, err := bootstrap.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf(ctx, "Failed to set up application: %v", err)
	}

	router := api.NewRouter(api.RouterConfig{
		Supervisor: app.Supervisor,
		Tourist:    app.Tourist,
		Weather:    app.Weather,
		Registry:   app.Registry,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Infof(ctx, "Starting server on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf(ctx, "Server failed: %v", err)
	}
}
