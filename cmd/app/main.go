package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/paypay"
	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/pkg/logger"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: configs.Log.Level, Format: configs.Log.Format})
	defer func() { _ = log.Sync() }()

	if err = run(configs, log); err != nil {
		log.Fatal("storefront stopped with error", zap.Error(err))
	}
}

func run(configs cmd.Config, log *zap.Logger) error {
	sqlDB, err := openDatabase(configs.Database)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	if err = migrations.Up(sqlDB, log); err != nil {
		return err
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open gorm: %w", err)
	}

	gateway, err := paypay.NewClient(paypay.Config{
		BaseURL:       configs.PayPay.BaseURL,
		APIKey:        configs.PayPay.APIKey,
		APISecret:     configs.PayPay.APISecret,
		MerchantID:    configs.PayPay.MerchantID,
		Timeout:       configs.PayPay.Timeout,
		Currency:      configs.PayPay.Currency,
		PublicBaseURL: configs.HTTP.PublicBaseURL,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create paypay client: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, gateway, log)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(&app, configs, log)
}

func openDatabase(cfg cmd.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	return db, nil
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config, log *zap.Logger) error {
	e := httpin.NewRouter(app.CreateServer(), app.CreateAuthConfig(), log, httpin.EchoLogLevel(configs.Log.Level))
	e.Server.ReadTimeout = configs.HTTP.ReadTimeout
	e.Server.WriteTimeout = configs.HTTP.WriteTimeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("port", configs.HTTP.Port))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTP.Port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.HTTP.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
