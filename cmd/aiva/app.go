package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"aiva/internal/ai"
	"aiva/internal/config"
	"aiva/internal/notify"
	"aiva/internal/publisher"
	"aiva/internal/service"
	"aiva/internal/storage/local"
	"aiva/internal/storage/postgres"
	"aiva/internal/wordpress"
)

// app holds everything a command needs, built once from the config file.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	kv       *local.KV
	db       *sqlx.DB
	rabbitMQ *publisher.RabbitMQ

	store  service.DataStore
	remote *service.RemoteDataStore
	local  *service.LocalDataStore
	sites  *wordpress.SiteStore
}

func newApp(ctx context.Context, configPath string) (*app, error) {
	logger := setupLogger("info")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger = setupLogger(cfg.LogLevel)

	a := &app{cfg: cfg, logger: logger}

	a.kv, err = local.Open(cfg.Local.Path)
	if err != nil {
		return nil, err
	}
	a.sites = wordpress.NewSiteStore(a.kv, wordpress.SiteConfig{
		URL:         cfg.WordPress.URL,
		Username:    cfg.WordPress.Username,
		AppPassword: cfg.WordPress.AppPassword,
	})

	notifiers := notify.Multi{notify.NewLog(logger)}
	if cfg.RabbitMQ.Enabled {
		a.rabbitMQ, err = publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
			Source:     cfg.Session.UserID,
		}, logger)
		if err != nil {
			a.Close()
			return nil, err
		}
		notifiers = append(notifiers, a.rabbitMQ)
	}

	if !cfg.Remote() {
		a.local = service.NewLocalDataStore(a.kv, notifiers, logger)
		a.store = a.local
		logger.Info("using local data store", "path", cfg.Local.Path)
		return a, nil
	}

	a.db, err = sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	a.remote = service.NewRemoteDataStore(service.RemoteTables{
		ICPs:          postgres.NewICPStore(a.db),
		Contents:      postgres.NewContentStore(a.db),
		Graphics:      postgres.NewGraphicStore(a.db),
		CalendarItems: postgres.NewCalendarStore(a.db),
		Campaigns:     postgres.NewCampaignStore(a.db),
	}, postgres.NewTransactionManager(a.db), notifiers, logger)
	a.store = a.remote
	return a, nil
}

// load brings the data store to its loaded state: the local store loads
// and seeds, the remote store signs in the configured user.
func (a *app) load(ctx context.Context) error {
	if a.local != nil {
		return a.local.Start(ctx)
	}
	return a.remote.SetUser(ctx, a.cfg.Session.UserID)
}

func (a *app) wordpressClient(ctx context.Context) (*wordpress.Client, error) {
	return a.sites.Client(ctx, wordpress.Config{
		Timeout:           a.cfg.WordPress.Timeout,
		MaxAttempts:       a.cfg.WordPress.Retry.MaxAttempts,
		InitialBackoff:    a.cfg.WordPress.Retry.InitialBackoff,
		MaxBackoff:        a.cfg.WordPress.Retry.MaxBackoff,
		RequestsPerSecond: a.cfg.WordPress.RequestsPerSecond,
	}, a.logger)
}

func (a *app) aiClient() *ai.Client {
	return ai.New(ai.Config{
		Provider:      a.cfg.AI.Provider,
		APIKey:        a.cfg.AI.APIKey,
		BaseURL:       a.cfg.AI.BaseURL,
		Model:         a.cfg.AI.Model,
		ImageModel:    a.cfg.AI.ImageModel,
		GeminiBaseURL: a.cfg.AI.GeminiBaseURL,
		Timeout:       a.cfg.AI.Timeout,
	}, a.logger)
}

func (a *app) Close() error {
	var errs []error
	if a.rabbitMQ != nil {
		errs = append(errs, a.rabbitMQ.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.kv != nil {
		errs = append(errs, a.kv.Close())
	}
	return errors.Join(errs...)
}

// withApp builds the app, loads the data store and runs fn.
func withApp(ctx context.Context, configPath string, fn func(ctx context.Context, a *app) error) error {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.load(ctx); err != nil {
		return err
	}
	return fn(ctx, a)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
