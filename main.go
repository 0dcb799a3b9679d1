package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rannafy-server/config"
	"rannafy-server/controllers"
	"rannafy-server/database"
	"rannafy-server/logger"
	"rannafy-server/repository"
	"rannafy-server/routes"
	"rannafy-server/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.Initialize(cfg.Environment)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	client, db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(client); err != nil {
			log.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDB))

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx, db); err != nil {
		log.Fatal("Failed to ensure indexes", zap.Error(err))
	}
	indexCancel()

	// Repositories
	orderRepo := repository.NewMongoOrderRepository(db)
	paymentRepo := repository.NewMongoPaymentRepository(db)
	userRepo := repository.NewMongoUserRepository(db)
	mealRepo := repository.NewMongoMealRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)
	favoriteRepo := repository.NewMongoFavoriteRepository(db)

	// Services
	stripeSvc := services.NewStripeService(cfg.StripeSecretKey)
	orderSvc := services.NewOrderService(orderRepo, log)
	paymentSvc := services.NewPaymentService(stripeSvc, paymentRepo, orderRepo, client, cfg.FrontendURL, log)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Controllers{
		Orders:    controllers.NewOrderController(orderSvc, log),
		Payments:  controllers.NewPaymentController(paymentSvc, log),
		Users:     controllers.NewUserController(userRepo, log),
		Meals:     controllers.NewMealController(mealRepo),
		Reviews:   controllers.NewReviewController(reviewRepo, log),
		Favorites: controllers.NewFavoriteController(favoriteRepo, log),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("Server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
}
