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

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Beausejour-Hotels/service-reservation/internal/application"
	"github.com/Beausejour-Hotels/service-reservation/internal/config"
	"github.com/Beausejour-Hotels/service-reservation/internal/database"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain/reservation"
	"github.com/Beausejour-Hotels/service-reservation/internal/events"
	"github.com/Beausejour-Hotels/service-reservation/internal/handler"
	"github.com/Beausejour-Hotels/service-reservation/internal/kafka"
	"github.com/Beausejour-Hotels/service-reservation/internal/locking"
	"github.com/Beausejour-Hotels/service-reservation/internal/logger"
	"github.com/Beausejour-Hotels/service-reservation/internal/middleware"
	"github.com/Beausejour-Hotels/service-reservation/internal/repository"
	"github.com/Beausejour-Hotels/service-reservation/internal/transport/grpcfront"
	"github.com/Beausejour-Hotels/service-reservation/internal/transport/soapfront"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "service-reservation")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-reservation",
		zap.String("port", cfg.Port),
		zap.String("grpc_port", cfg.GRPCPort),
	)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.ClientModel{}, &repository.RoomModel{}, &repository.ReservationModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DBConfig.DatabaseURL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repositories
	reservationRepo := repository.NewGormReservationRepository(db)
	clientRepo := repository.NewGormClientRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)

	// Initialize pricing strategy and the per-room booking lock
	pricingStrategy := reservation.NewNightlyRatePricing()
	roomLocker := locking.NewKeyedRoomLocker(cfg.LockAcquireTimeout)

	// Initialize application services
	reservationService := application.NewReservationService(
		reservationRepo,
		clientRepo,
		roomRepo,
		pricingStrategy,
		roomLocker,
		kafkaProducer,
		log,
	)
	clientService := application.NewClientService(clientRepo, reservationRepo, log)
	roomService := application.NewRoomService(roomRepo, log)

	// Initialize and start front-desk event consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.KafkaConfig.GroupPrefix + "reservation-service"
	frontDeskConsumer := events.NewFrontDeskConsumer(
		cfg.KafkaConfig.Brokers,
		groupID,
		reservationService,
		log,
	)
	defer func() { _ = frontDeskConsumer.Close() }()

	go func() {
		log.Info("starting front-desk event consumer")
		if err := frontDeskConsumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("front-desk event consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	reservationHandler := handler.NewReservationHandler(reservationService)
	clientHandler := handler.NewClientHandler(clientService)
	roomHandler := handler.NewRoomHandler(roomService)
	adminHandler := handler.NewAdminHandler(reservationService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())

	// Register routes
	reservationHandler.RegisterRoutes(&router.RouterGroup)
	clientHandler.RegisterRoutes(&router.RouterGroup)
	roomHandler.RegisterRoutes(&router.RouterGroup)
	adminHandler.RegisterRoutes(&router.RouterGroup)

	// Mount the SOAP endpoint
	soapHandler := soapfront.NewHandler(reservationService, log)
	router.POST("/ws", gin.WrapH(soapHandler))

	// Start the gRPC front-end in a goroutine
	grpcfront.RegisterCodec()
	grpcServer := grpc.NewServer(grpc.ForceServerCodec(grpcfront.Codec{}))
	grpcfront.RegisterReservationServer(grpcServer, grpcfront.NewReservationServer(reservationService))

	grpcListener, err := net.Listen("tcp", cfg.GRPCPort)
	if err != nil {
		log.Fatal("failed to listen for gRPC", zap.Error(err))
	}
	go func() {
		log.Info("gRPC server starting", zap.String("addr", cfg.GRPCPort))
		if err := grpcServer.Serve(grpcListener); err != nil {
			log.Error("gRPC server error", zap.Error(err))
		}
	}()

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-reservation...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	grpcServer.GracefulStop()

	log.Info("service-reservation stopped")
}
