//go:build integration

package kv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const connectionTimeout = 3 * time.Second

const (
	pgPort         = "5433"
	pgTestUser     = "test"
	pgTestPassword = "test"
	pgTestDB       = "customer_templates"
)

const (
	mongoPort         = "27018"
	mongoTestUser     = "test"
	mongoTestPassword = "test"
	mongoTestDB       = "customer_templates"
)

const redisPort = "6380"

var (
	pgPool      *pgxpool.Pool
	mongoClient *mongo.Client
	redisClient *redis.Client
)

func TestMain(m *testing.M) {
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		logrus.Fatalf("failed to create pool - %v", err)
	}

	if err := dockerPool.Client.Ping(); err != nil {
		logrus.Fatalf("failed to connect to docker - %v", err)
	}

	// start postgres
	postgres, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "latest",
		Env: []string{
			fmt.Sprintf("POSTGRES_USER=%s", pgTestUser),
			fmt.Sprintf("POSTGRES_PASSWORD=%s", pgTestPassword),
			fmt.Sprintf("POSTGRES_DB=%s", pgTestDB),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"5432/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", pgPort)}},
		},
	})
	if err != nil {
		logrus.Fatalf("failed to start postgresql - %v", err)
	}

	pgURI := fmt.Sprintf("postgres://%s:%s@localhost:%s/%s?sslmode=disable", pgTestUser, pgTestPassword, pgPort, pgTestDB)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var err error
		pgPool, err = pgxpool.Connect(ctx, pgURI)
		if err != nil {
			return err
		}
		return pgPool.Ping(ctx)
	})
	if err != nil {
		logrus.Fatalf("failed to establish connection to postgresql - %v", err)
	}

	// run migrations
	migration, err := os.ReadFile(filepath.Join("..", "..", "migrations", "V1__kv_entries.sql"))
	if err != nil {
		logrus.Fatalf("failed to read migrations - %v", err)
	}

	if _, err := pgPool.Exec(context.Background(), string(migration)); err != nil {
		logrus.Fatalf("failed to apply migrations - %v", err)
	}

	// start mongo
	mongodb, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "latest",
		Env: []string{
			fmt.Sprintf("MONGO_INITDB_ROOT_USERNAME=%s", mongoTestUser),
			fmt.Sprintf("MONGO_INITDB_ROOT_PASSWORD=%s", mongoTestPassword),
		},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"27017/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", mongoPort)}},
		},
	})
	if err != nil {
		logrus.Fatalf("failed to start mongodb - %v", err)
	}

	mongoURI := fmt.Sprintf("mongodb://%s:%s@localhost:%s/?maxPoolSize=10", mongoTestUser, mongoTestPassword, mongoPort)
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		var err error
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if err != nil {
			return err
		}
		return mongoClient.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		logrus.Fatalf("failed to establish connection to mongodb - %v", err)
	}

	// start redis
	redisCache, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "latest",
		PortBindings: map[docker.Port][]docker.PortBinding{
			"6379/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", redisPort)}},
		},
	})
	if err != nil {
		logrus.Fatalf("failed to start redis - %v", err)
	}

	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		redisClient = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("localhost:%s", redisPort)})
		return redisClient.Ping(ctx).Err()
	})
	if err != nil {
		logrus.Fatalf("failed to establish connection to redis - %v", err)
	}

	// start tests
	code := m.Run()

	pgPool.Close()
	_ = mongoClient.Disconnect(context.Background())
	_ = redisClient.Close()

	for _, r := range []*dockertest.Resource{postgres, mongodb, redisCache} {
		if err := dockerPool.Purge(r); err != nil {
			logrus.Fatalf("failed to purge container - %v", err)
		}
	}

	os.Exit(code)
}

func TestBackends(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite database")

	sqliteBackend, err := NewSQLite(db)
	require.NoError(t, err, "failed to migrate sqlite database")

	backends := map[string]Backend{
		"postgres": NewPostgres(pgPool),
		"mongo":    NewMongo(mongoClient, mongoTestDB),
		"redis":    NewRedis(redisClient),
		"sqlite":   sqliteBackend,
	}

	for name, backend := range backends {
		backend := WithNamespace(backend, "integration")

		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			t.Log("missing key must be reported as not found")
			{
				_, err := backend.Get(ctx, "missing")
				require.ErrorIs(t, err, ErrNotFound, "ErrNotFound is expected for missing key")
			}

			t.Log("stored value must be read back")
			{
				require.NoError(t, backend.Set(ctx, "customers", []byte(`[{"id":"1"}]`)))

				got, err := backend.Get(ctx, "customers")
				require.NoError(t, err)
				require.Equal(t, []byte(`[{"id":"1"}]`), got)
			}

			t.Log("stored value must be overwritten")
			{
				require.NoError(t, backend.Set(ctx, "customers", []byte(`[]`)))

				got, err := backend.Get(ctx, "customers")
				require.NoError(t, err)
				require.Equal(t, []byte(`[]`), got)
			}
		})
	}
}
