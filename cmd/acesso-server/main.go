package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/BrandonDHaskell/acesso/server/internal/acesso/service"
	"github.com/BrandonDHaskell/acesso/server/internal/acesso/store/sqlite"
	"github.com/BrandonDHaskell/acesso/server/internal/config"
	"github.com/BrandonDHaskell/acesso/server/internal/db"
	"github.com/BrandonDHaskell/acesso/server/internal/grpcapi"
	"github.com/BrandonDHaskell/acesso/server/internal/httpapi"
	"github.com/BrandonDHaskell/acesso/server/internal/logging"
)

var (
	gitCommit string
	gitTag    = "dev"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "YAML config file (defaults to ./config.yaml when present)",
	}
	portFlag = &cli.IntFlag{
		Name:  "port",
		Usage: "HTTP listen port",
	}
	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "SQLite database file",
	}
	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable debug logging",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "acesso-server"
	app.Usage = "badge access control backend"
	app.Flags = []cli.Flag{configFileFlag, portFlag, dbFlag, debugFlag}
	app.Commands = []*cli.Command{
		{
			Name:   "seed",
			Usage:  "Insert the demo users and machine into the database",
			Action: seed,
		},
		{
			Name: "version",
			Action: func(*cli.Context) error {
				fmt.Println(version())
				return nil
			},
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func version() string {
	if gitCommit == "" {
		return gitTag
	}
	return gitTag + "-" + gitCommit
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String(configFileFlag.Name))
	if err != nil {
		return nil, err
	}
	if c.IsSet(portFlag.Name) {
		cfg.Port = c.Int(portFlag.Name)
	}
	if c.IsSet(dbFlag.Name) {
		cfg.DBPath = c.String(dbFlag.Name)
	}
	if c.Bool(debugFlag.Name) {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(logging.Config{
		Level:   cfg.LogLevel,
		Console: cfg.LogConsole,
		File:    cfg.LogFile,
	})
}

func seed(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	conn, err := db.Open(c.Context, db.Config{Path: cfg.DBPath})
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.Seed(c.Context, conn); err != nil {
		return err
	}
	logger.Info("demo data seeded", zap.String("db", cfg.DBPath))
	return nil
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := db.Open(ctx, db.Config{Path: cfg.DBPath, Seed: cfg.Seed})
	if err != nil {
		return err
	}
	defer conn.Close()

	writer := db.NewWorker(conn)
	defer writer.Close()

	// Stores
	userStore := sqlite.NewUserStore(conn, writer)
	machineStore := sqlite.NewMachineStore(conn)
	eventStore := sqlite.NewEventStore(conn, writer)

	// Services
	validationSvc := service.NewValidationService(userStore, logger)
	directorySvc := service.NewDirectoryService(userStore, machineStore, logger)
	eventLogSvc := service.NewEventLogService(eventStore, service.EventLogConfig{
		MaxRecentLimit: cfg.MaxLogLimit,
	}, logger)
	summarySvc := service.NewSummaryService(userStore, machineStore, eventStore)

	stats := service.NewStatsRefresher(summarySvc, service.StatsConfig{
		IntervalSec: cfg.StatsIntervalSec,
	}, logger)
	stats.Start(ctx)
	defer stats.Stop()

	// HTTP
	srv := httpapi.NewServer(httpapi.Dependencies{
		Logger:            logger,
		Addr:              cfg.HTTPAddr(),
		ValidationService: validationSvc,
		DirectoryService:  directorySvc,
		EventLogService:   eventLogSvc,
		SummaryService:    summarySvc,
		DB:                conn,
		AllowedOrigins:    cfg.AllowedOrigins,
	})

	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.HTTPAddr()),
			zap.String("db", cfg.DBPath),
			zap.String("version", version()),
		)
		if err := srv.Start(); err != nil {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	var grpcSrv *grpcapi.Server
	if cfg.GRPCAddr != "" {
		grpcSrv = grpcapi.NewServer(cfg.GRPCAddr, logger)
		grpcSrv.MarkServing()
		go func() {
			if err := grpcSrv.Serve(); err != nil {
				logger.Error("grpc server error", zap.Error(err))
				stop()
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSec)*time.Second)
	defer cancel()

	if grpcSrv != nil {
		grpcSrv.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	return nil
}
