package main

import (
	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Mohdivswa-71124/Queue-Reporter/config"
	"github.com/Mohdivswa-71124/Queue-Reporter/server"
	"github.com/Mohdivswa-71124/Queue-Reporter/service"
	"github.com/Mohdivswa-71124/Queue-Reporter/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	cfg := config.LoadServer()

	// Set log level
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	st, err := store.New(cfg.StorePath)
	if err != nil {
		log.Fatalf("Failed to open report store at %s: %v", cfg.StorePath, err)
	}

	server.StartService(cfg.Port, service.New(st))
}
