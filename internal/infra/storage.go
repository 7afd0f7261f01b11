package infra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-templates/internal/config"
	"github.com/umalmyha/customer-templates/internal/kv"
)

// Storage connects to backend selected by storage driver and scopes its keys by namespace.
// Returned close func releases underlying connection.
func Storage(ctx context.Context, cfg config.Config) (kv.Backend, func(), error) {
	backend, closeFn, err := connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	logrus.WithFields(logrus.Fields{
		"driver":    cfg.StorageCfg.Driver,
		"namespace": cfg.StorageCfg.Namespace,
	}).Info("storage backend is ready")

	return kv.WithNamespace(backend, cfg.StorageCfg.Namespace), closeFn, nil
}

func connect(ctx context.Context, cfg config.Config) (kv.Backend, func(), error) {
	switch cfg.StorageCfg.Driver {
	case config.DriverMemory:
		return kv.NewMemory(), func() {}, nil
	case config.DriverSQLite:
		db, err := SQLite(cfg.SQLiteCfg)
		if err != nil {
			return nil, nil, err
		}

		backend, err := kv.NewSQLite(db)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to prepare sqlite storage - %w", err)
		}

		return backend, func() {
			if sqlDB, err := db.DB(); err == nil {
				closeOrWarn("sqlite", sqlDB.Close)
			}
		}, nil
	case config.DriverRedis:
		client, err := Redis(ctx, cfg.RedisCfg)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewRedis(client), func() { closeOrWarn("redis", client.Close) }, nil
	case config.DriverPostgres:
		pool, err := Postgresql(ctx, cfg.PostgresCfg)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewPostgres(pool), pool.Close, nil
	case config.DriverMongo:
		client, err := Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, nil, err
		}
		return kv.NewMongo(client, cfg.MongoCfg.Database), func() {
			closeOrWarn("mongo", func() error { return client.Disconnect(context.Background()) })
		}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageCfg.Driver)
	}
}

func closeOrWarn(driver string, closeFn func() error) {
	if err := closeFn(); err != nil {
		logrus.WithField("driver", driver).Warnf("failed to close storage connection - %v", err)
	}
}
