package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"vincent-gallery/pkg/config"
	"vincent-gallery/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	zlog, err := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		File:    cfg.LogFile,
		DevMode: cfg.DevMode,
	})
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer zlog.Sync()

	if err := newRootCmd(cfg, zlog).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
