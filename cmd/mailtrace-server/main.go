// cmd/mailtrace-server/main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/clapenergy/mailtrace-render-starter/pkg/config"
	"github.com/clapenergy/mailtrace-render-starter/pkg/engine"
	"github.com/clapenergy/mailtrace-render-starter/pkg/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	engCfg, err := cfg.EngineConfig()
	if err != nil {
		logger.Fatal("Failed to build engine configuration", zap.Error(err))
	}

	eng, err := engine.NewWithConfig(logger, engCfg)
	if err != nil {
		logger.Fatal("Failed to build matching engine", zap.Error(err))
	}

	srv, err := server.NewServer(eng, logger, server.Options{
		MaxUploadBytes: cfg.MaxUploadBytes,
		Password:       cfg.Password,
		SessionTTL:     cfg.SessionTTL,
	})
	if err != nil {
		logger.Fatal("Failed to build server", zap.Error(err))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting mailtrace server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
