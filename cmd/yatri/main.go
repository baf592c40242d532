package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/yatri/internal/cache"
	"github.com/alexanderramin/yatri/internal/cli"
	"github.com/alexanderramin/yatri/internal/db"
	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/alexanderramin/yatri/internal/repository"
	"github.com/alexanderramin/yatri/internal/routing"
	"github.com/alexanderramin/yatri/internal/scheduler"
	"github.com/alexanderramin/yatri/internal/service"
	"github.com/alexanderramin/yatri/internal/tips"
	"github.com/alexanderramin/yatri/internal/weather"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	activityRepo := repository.NewSQLiteActivityRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)

	// Wire external collaborators; each degrades to a local fallback
	// when disabled or unreachable.
	var weatherClient weather.Client = weather.Disabled{}
	weatherCfg := weather.LoadConfig()
	if weatherCfg.Enabled {
		var observer weather.Observer = weather.NoopObserver{}
		if os.Getenv("YATRI_LOG_CALLS") != "" {
			observer = weather.NewLogObserver(os.Stderr)
		}
		weatherClient = weather.NewHTTPClient(weatherCfg,
			cache.New[domain.WeatherObservation](weatherCfg.CacheTTL), observer)
	}

	var travel scheduler.TravelEstimator = scheduler.HeuristicTravel{}
	routingCfg := routing.LoadConfig()
	if routingCfg.Enabled {
		var observer routing.Observer = routing.NoopObserver{}
		if os.Getenv("YATRI_LOG_CALLS") != "" {
			observer = routing.NewLogObserver(os.Stderr)
		}
		travel = routing.NewEstimator(routing.NewHTTPClient(routingCfg),
			cache.New[scheduler.TravelEstimate](routingCfg.CacheTTL), observer)
	}

	var tipGen tips.Generator = tips.Disabled{}
	tipsCfg := tips.LoadConfig()
	if tipsCfg.Enabled {
		tipGen = tips.NewHTTPGenerator(tipsCfg)
	}

	// Wire the planner service
	opts := []service.PlannerOption{}
	if os.Getenv("YATRI_LOG_CALLS") != "" {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}
	planner := service.NewPlannerService(activityRepo, eventRepo,
		weatherClient, travel, tips.NewService(tipGen), opts...)

	app := &cli.App{
		Planner:    planner,
		Activities: activityRepo,
		Events:     eventRepo,
	}

	// Detect interactive terminal for the wizard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
