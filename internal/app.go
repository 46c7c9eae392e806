package internal

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	logger_adapter "github.com/IMRSIV/bank-albilad-demo/internal/adapters/logger"
	"github.com/IMRSIV/bank-albilad-demo/internal/adapters/rest"
	"github.com/IMRSIV/bank-albilad-demo/internal/adapters/sakanifetcher"
	"github.com/IMRSIV/bank-albilad-demo/internal/adapters/sampledata"
	"github.com/IMRSIV/bank-albilad-demo/internal/configs"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/port"
	"github.com/IMRSIV/bank-albilad-demo/internal/core/usecase"
	"github.com/IMRSIV/bank-albilad-demo/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const shutdownTimeout = 10 * time.Second

// App is the composition root of the service.
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- logging ---
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- outgoing adapters ---
	sample := sampledata.New()
	if err := sample.Validate(); err != nil {
		appLogger.Error("Sample dataset is invalid", err, nil)
		closeFluent(fluentClient)
		return nil, fmt.Errorf("sample dataset: %w", err)
	}
	appLogger.Info("Sample dataset loaded.", port.Fields{"records": sample.Len()})

	fetcher, err := sakanifetcher.NewSakaniFetcherAdapter(appConfig.Sakani)
	if err != nil {
		appLogger.Error("Failed to create marketplace fetcher", err, nil)
		closeFluent(fluentClient)
		return nil, err
	}
	mapper := sakanifetcher.NewMapper()

	appLogger.Info("Marketplace client configured.", port.Fields{
		"base_url":         appConfig.Sakani.BaseURL,
		"mock_data":        appConfig.Sakani.UseMockData,
		"guest_mode":       appConfig.Sakani.GuestMode(),
		"search_endpoints": len(appConfig.Sakani.SearchEndpoints),
		"detail_endpoints": len(appConfig.Sakani.DetailEndpoints),
	})

	// --- use cases ---
	searchUseCase := usecase.NewSearchPropertiesUseCase(appConfig.Sakani, fetcher, mapper, sample)
	getDetailsUseCase := usecase.NewGetPropertyDetailsUseCase(appConfig.Sakani, fetcher, mapper, sample)
	apiStatusUseCase := usecase.NewAPIStatusUseCase(appConfig.Sakani, fetcher)
	proxySearchUseCase := usecase.NewProxySearchUseCase(fetcher)
	proxyDetailsUseCase := usecase.NewProxyDetailsUseCase(fetcher)
	filterOptionsUseCase := usecase.NewGetFilterOptionsUseCase(sample)

	appLogger.Info("All use cases initialized.", nil)

	// --- REST API ---
	proxyHandler := rest.NewSakaniProxyHandler(proxySearchUseCase, proxyDetailsUseCase)
	propertyHandler := rest.NewPropertyHandler(searchUseCase, getDetailsUseCase, filterOptionsUseCase)
	statusHandler := rest.NewStatusHandler(apiStatusUseCase)

	apiServer := rest.NewServer(appConfig.Rest, proxyHandler, propertyHandler, statusHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	return &App{
		config:       appConfig,
		apiServer:    apiServer,
		fluentClient: fluentClient,
		logger:       appLogger,
	}, nil
}

// Run serves HTTP until SIGINT/SIGTERM or a server failure, then shuts down.
func (a *App) Run() error {
	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.Error("Error during API server shutdown", err, nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)
		closeFluent(a.fluentClient)
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.Port})
		if err := a.apiServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
		return nil
	case err := <-errorsCh:
		a.logger.Error("HTTP server failed, shutting down", err, nil)
		return err
	}
}

func closeFluent(client *fluent.Fluent) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		// fluent may already be unreachable
		fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
