package main

import (
	"fmt"
	"os"

	"clinic-scheduling/cmd/bootstrap"
	"clinic-scheduling/config"
	"clinic-scheduling/internal/delivery/console"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := bootstrap.SetupLogger(cfg)
	services := bootstrap.NewServices(log)
	if cfg.App.Env == "development" {
		bootstrap.SeedDemoData(log, services)
	}

	shell := console.New(
		os.Stdin,
		os.Stdout,
		services.Patients,
		services.Doctors,
		services.Exams,
		services.Medications,
		services.Scheduler,
		services.Payments,
	)
	shell.Run()
}
