package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jobmatcher/career-analyzer/internal/config"
	"jobmatcher/career-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Serves POST /match-jobs, the API documentation and the pre-built frontend.",
	RunE:  runServe,
}

var servePort string

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port to listen on (overrides PORT env var)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != "" {
		cfg.Server.Port = servePort
	}

	logger := config.NewLogger(cfg)
	logger.Info("✅ Config loaded successfully")

	p, err := buildPipeline(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	if err := p.storage.EnsureUploadDir(); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	app := server.New(server.Options{
		Matcher:     p.matcher,
		MaxFileSize: cfg.Storage.MaxFileSize,
		FrontendDir: cfg.Frontend.BuildDir,
		Logger:      logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.WithError(err).Error("❌ Server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Infof("🚀 Server starting on %s", addr)
	logger.Infof("📖 API Documentation: http://localhost%s/docs/", addr)

	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
