package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sergiostefanizzi/profile-microservice-sub000/cache"
	"github.com/sergiostefanizzi/profile-microservice-sub000/config"
	"github.com/sergiostefanizzi/profile-microservice-sub000/identity"
	"github.com/sergiostefanizzi/profile-microservice-sub000/repositories"
	"github.com/sergiostefanizzi/profile-microservice-sub000/routes"
	"github.com/sergiostefanizzi/profile-microservice-sub000/services"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, using environment")
	}

	// Initialize database
	db := config.InitDB()

	// Follower-count cache is optional; without Redis every read hits the DB.
	var counts *cache.FollowCounts
	if addr := config.GetRedisAddr(); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		counts = cache.NewFollowCounts(rdb, 5*time.Minute)
	}

	// The user directory is consulted when the token's profile list misses.
	var directory identity.Directory
	if dirCfg := config.GetDirectoryConfig(); dirCfg.BaseURL != "" {
		directory = identity.NewHTTPDirectory(identity.HTTPDirectoryConfig{
			BaseURL:      dirCfg.BaseURL,
			TokenURL:     dirCfg.TokenURL,
			ClientID:     dirCfg.ClientID,
			ClientSecret: dirCfg.ClientSecret,
		})
	}

	// Start the story retention sweep
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := services.NewStorySweeper(
		repositories.NewGormPostRepository(db),
		config.GetSweepInterval(),
		log.Logger,
	)
	sweeper.Start(ctx)

	// Create a new Gin router
	r := gin.Default()

	// Initialize routes
	routes.SetupRoutes(r, db, counts, directory)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Info().Str("port", port).Msg("starting server")
		if err := r.Run(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	sweeper.Stop()
	<-sweeper.Done()
}
