package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-templates/internal/config"
	"github.com/umalmyha/customer-templates/internal/document"
	"github.com/umalmyha/customer-templates/internal/infra"
	"github.com/umalmyha/customer-templates/internal/kv"
	"github.com/umalmyha/customer-templates/internal/seed"
	"github.com/umalmyha/customer-templates/internal/service"
	"github.com/umalmyha/customer-templates/internal/store"
)

// @title       Customer templates API
// @version     1.0
// @description Customers, document templates and per-customer documents materialized from them
// @host        localhost:3000
// @BasePath    /
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := configureLogger(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	backend, closeStorage, err := connectStorage(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closeStorage()

	codec, err := kv.CodecByName(cfg.StorageCfg.Codec)
	if err != nil {
		logrus.Fatal(err)
	}

	app, err := application(backend, codec)
	if err != nil {
		logrus.Fatal(err)
	}

	start(app, cfg.HTTPCfg)
}

func configureLogger(cfg config.LogCfg) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level - %w", err)
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func connectStorage(cfg config.Config) (kv.Backend, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StorageCfg.ConnectTimeout)
	defer cancel()

	return infra.Storage(ctx, cfg)
}

func application(backend kv.Backend, codec kv.Codec) (*echo.Echo, error) {
	st := store.New(backend, codec)

	customers, templates := st.Load(context.Background())
	logrus.WithFields(logrus.Fields{
		"customers": customers,
		"templates": templates,
		"codec":     codec.Name(),
	}).Info("store is loaded")

	return infra.Router(infra.Services{
		Customer:  service.NewCustomerService(st),
		Template:  service.NewTemplateService(st),
		Document:  service.NewDocumentService(st, document.LogRequester(document.ActionDownload), document.LogRequester(document.ActionPrint)),
		Reference: service.NewReferenceService(seed.Users()),
	})
}

func start(app *echo.Echo, cfg config.HTTPCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logrus.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logrus.Errorf("failed to stop server gracefully - %v", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}
}
