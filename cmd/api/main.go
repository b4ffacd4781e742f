package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobboard/internal/auth"
	"jobboard/internal/config"
	"jobboard/internal/database"
	"jobboard/internal/handlers"
	"jobboard/internal/middleware"
	"jobboard/internal/scheduler"
	"jobboard/internal/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("[main] no .env file found, using OS environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("[main] configuration error: ", err)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("[main] failed to connect to database: ", err)
	}

	rdb, err := database.NewRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("[main] failed to connect to redis: ", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	userService := services.NewUserService(db)
	companyService := services.NewCompanyService(db)
	jobService := services.NewJobService(db)
	interactionService := services.NewInteractionService(db)
	applicationService := services.NewApplicationService(db)
	scrapingService := services.NewScrapingService(db)
	statsService := services.NewStatsService(db, rdb)
	matchService := services.NewMatchService(db)

	h := &handlers.Handlers{
		Auth:         handlers.NewAuthHandler(userService, tokens),
		Users:        handlers.NewUserHandler(userService, interactionService),
		Companies:    handlers.NewCompanyHandler(companyService),
		Jobs:         handlers.NewJobHandler(jobService, interactionService, matchService),
		Applications: handlers.NewApplicationHandler(applicationService, interactionService),
		Scraping:     handlers.NewScrapingHandler(scrapingService),
		Stats:        handlers.NewStatsHandler(statsService),
	}

	r := gin.Default()
	r.Use(middleware.RequestID())

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RedisClient: rdb,
		Limit:       cfg.RateLimitPerMinute,
		Window:      time.Minute,
	}))

	handlers.RegisterRoutes(r, h, tokens, db)

	sched := scheduler.New(jobService, statsService, cfg.OfferRetentionDays, cfg.SweepIntervalHours)
	if err := sched.Start(context.Background()); err != nil {
		log.Fatal("[main] failed to start scheduler: ", err)
	}
	defer sched.Stop()

	log.Printf("[main] server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[main] server failed to start: ", err)
	}
}
