package main

import (
	"context"
	"log"
	"net/http"

	"poros-portal/cmd/api/router"
	"poros-portal/cmd/internal/logger"
	"poros-portal/config"
	"poros-portal/db"
	"poros-portal/storage"
)

// @title           Poros Portal API
// @version         1.0
// @description     News portal API for articles, categories and media uploads
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}

	store, err := storage.NewMinioStore(cfg.Storage)
	if err != nil {
		log.Fatal(err)
	}
	for _, warning := range storage.CheckPublicBaseURL(cfg.Storage) {
		logger.Log.Warn(warning)
	}

	r, err := router.New(db.Database(), store, cfg)
	if err != nil {
		log.Fatal(err)
	}

	logger.InfoWithFields("starting api server", logger.Fields{"addr": cfg.Server.Addr})
	if err := r.Run(cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
