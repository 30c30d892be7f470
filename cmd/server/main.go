// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"customer-service/config"
	"customer-service/genproto/customerpb"
	"customer-service/internal/cache"
	"customer-service/internal/graph"
	"customer-service/internal/handler"
	"customer-service/internal/middleware"
	"customer-service/internal/repository"
	"customer-service/internal/router"
	"customer-service/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("starting customer service")

	// Load configuration
	cfg, err := config.Load(logger)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	logger.Info("configuration loaded",
		zap.String("environment", cfg.Server.Env),
		zap.String("port", cfg.Server.Port))

	// Connect to database
	dbConnStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	dbPool, err := pgxpool.New(context.Background(), dbConnStr)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	logger.Info("connected to database",
		zap.String("database", cfg.Database.DBName))

	// Redis-backed caches (best effort, service runs without them)
	redisCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)

	// Graph API client
	graphClient := graph.NewClient(cfg.Graph.BaseURL, cfg.Graph.Version, redisCache, logger)

	// Initialize repositories
	customerRepo := repository.NewCustomerRepository(dbPool)

	// Initialize usecases
	customerUC := usecase.NewCustomerUsecase(customerRepo, graphClient, logger)

	// Initialize handlers
	customerHandler := handler.NewCustomerHandler(customerUC, logger)
	grpcHandler := handler.NewGRPCHandler(customerUC, logger)

	// Auth middleware
	auth := middleware.NewAuthMiddleware(
		cfg.Auth.JWKSURL,
		cfg.Auth.Issuer,
		cfg.Auth.Audience,
		redisCache,
		logger,
	)

	// Setup routes
	r := router.SetupRoutes(customerHandler, auth, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server in goroutine
	go func() {
		logger.Info("http server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Start gRPC server in goroutine
	grpcServer := grpc.NewServer()
	customerpb.RegisterCustomerServiceServer(grpcServer, grpcHandler)

	go func() {
		lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
		if err != nil {
			logger.Fatal("failed to listen for grpc", zap.Error(err))
		}
		logger.Info("grpc server starting", zap.String("addr", cfg.Server.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("failed to start grpc server", zap.Error(err))
		}
	}()

	logger.Info("customer service started successfully",
		zap.String("port", cfg.Server.Port),
		zap.String("grpc_addr", cfg.Server.GRPCAddr),
		zap.String("environment", cfg.Server.Env))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
