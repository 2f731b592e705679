package main

import (
	"github.com/asher5712/LittleLemonAPI/configs"
	"github.com/asher5712/LittleLemonAPI/middlewares"
	"github.com/asher5712/LittleLemonAPI/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := configs.NewLogger()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}
	if err := configs.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}
	if err := configs.SeedManager(db); err != nil {
		log.Fatal().Err(err).Msg("seed manager")
	}

	r := gin.New()
	r.Use(middlewares.RequestLogger(log), gin.Recovery(), middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
