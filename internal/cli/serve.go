package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/maktabah/rijal/internal/api"
	"github.com/maktabah/rijal/internal/extractor"
	"github.com/maktabah/rijal/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var servePort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the extraction HTTP API",
	Long: `Serve exposes the extraction pipeline over HTTP:

  POST /api/v1/extract         extract one page
  POST /api/v1/extract/corpus  extract a full page collection
  GET  /api/v1/lexicons        inspect the active lexicons
  GET  /health, /ready         probes
  GET  /metrics                Prometheus metrics`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (default from config)")
	serveCmd.Flags().StringVar(&lexiconPath, "lexicons", "", "YAML file overriding the built-in lexicons")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Service.Port = servePort
	}
	if lexiconPath != "" {
		cfg.Extraction.LexiconFile = lexiconPath
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	exCfg := extractor.Config{}
	if cfg.Extraction.LexiconFile != "" {
		lf, err := extractor.LoadLexiconFile(cfg.Extraction.LexiconFile)
		if err != nil {
			return err
		}
		lf.Apply(&exCfg)
	}
	ex := extractor.New(exCfg, logger)

	provider := telemetry.NewProvider()
	handler := api.NewHandler(ex, cfg.Extraction.StartVolume, provider, logger)
	server := api.NewServer(handler, api.ServerConfig{
		Port:  cfg.Service.Port,
		Debug: cfg.Service.Debug,
	})

	logger.Info("starting http server",
		"port", cfg.Service.Port,
		"version", cfg.Service.Version,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			return err
		}
		logger.Info("server stopped")
	}
	return nil
}
