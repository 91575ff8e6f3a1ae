package main

import (
	"errors"
	"log"
	"net/http"

	"tracker/src/api"
	"tracker/src/config"
	"tracker/src/scheduler"
)

func main() {
	cfg, err := config.LoadConfig("./settings")
	if err != nil {
		log.Println(err, "Error while loading config")
		return
	}
	errC, err := run(cfg)
	if err != nil {
		log.Println(err, "Couldn't run")
		return
	}

	if err := <-errC; err != nil {
		log.Println(err, "Error while running")
	}
}

func run(cfg *config.Config) (<-chan error, error) {
	errC := make(chan error, 1)

	server, err := api.NewServer(cfg)
	if err != nil {
		return nil, err
	}
	httpServer := api.NewHTTPServer(server, cfg.Service.Port)

	reportsDir := cfg.Service.ReportsDir
	if reportsDir == "" {
		reportsDir = "./reports"
	}
	reportScheduler := scheduler.NewReportScheduler(
		server.Handler.Logger,
		reportsDir,
		server.Handler.ScheduleRepo,
		server.Handler.HoldingRepo,
		server.Handler.TransactionRepo,
		server.Handler.Summary,
		server.Handler.Export,
	)
	if err := reportScheduler.Start(); err != nil {
		return nil, err
	}

	go func() {
		log.Println("Starting server on port", cfg.Service.Port)

		// "ListenAndServe always returns a non-nil error. After Shutdown or Close, the returned error is
		// ErrServerClosed."
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()
	return errC, nil
}
