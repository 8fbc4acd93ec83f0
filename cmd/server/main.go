package main

import (
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpcadapter "github.com/FamilyApps/apestogether-performance/internal/adapter/grpc"
	performancev1 "github.com/FamilyApps/apestogether-performance/internal/adapter/grpc/performance/v1"
	"github.com/FamilyApps/apestogether-performance/internal/adapter/repository/postgres"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/cache"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/calendar"
	"github.com/FamilyApps/apestogether-performance/internal/usecase/performance"
)

const (
	defaultAPIToken = "dev-token"
	grpcPort        = ":8080"
)

func main() {
	// Optional .env for local runs; real deployments inject the environment.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// 1. Setup Database
	dbConnStr := os.Getenv("DB_CONN_STR")
	if dbConnStr == "" {
		// If explicit string is missing, build it from individual vars (Docker friendly)
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost" // Default for local run without docker
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "performance"
		}

		dbConnStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			host, port, user, password, dbname)
	}

	db, err := postgres.NewDB(dbConnStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. Initialize Repositories (Postgres)
	snapshotRepo := postgres.NewSnapshotRepository(db)
	benchmarkRepo := postgres.NewBenchmarkRepository(db)
	cacheRepo := postgres.NewCacheRepository(db)

	// 3. Initialize the Market Calendar and Services (Use Cases)
	cal, err := calendar.NewMarketCalendar(os.Getenv("EXCHANGE_ZONE"))
	if err != nil {
		log.Fatalf("Failed to initialize market calendar: %v", err)
	}

	perfService := performance.NewService(snapshotRepo, benchmarkRepo, cal, envInt("CHART_POINTS", 0))

	entityTTL := time.Duration(envInt("ENTITY_CACHE_TTL_MINUTES", 0)) * time.Minute
	orchestrator := cache.NewOrchestrator(perfService, cacheRepo, entityTTL)

	// 4. Start gRPC Server
	// Get API token from environment or use default
	apiToken := os.Getenv("API_TOKEN")
	if apiToken == "" {
		apiToken = defaultAPIToken
	}

	// Create gRPC server with AuthInterceptor
	grpcServer := grpclib.NewServer(
		grpclib.UnaryInterceptor(grpcadapter.AuthInterceptor(apiToken)),
	)

	// Register PerformanceServiceServer
	grpcAdapter := grpcadapter.NewServer(orchestrator)
	performancev1.RegisterPerformanceServiceServer(grpcServer, grpcAdapter)

	reflection.Register(grpcServer)

	// Listen on TCP port 8080
	lis, err := net.Listen("tcp", grpcPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", grpcPort, err)
	}

	// Start server in a goroutine
	go func() {
		log.Printf("gRPC server listening on %s", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	// Graceful shutdown
	waitForShutdown(grpcServer)
}

// envInt reads an integer environment variable, falling back on absence or
// garbage. A zero fallback lets each service pick its own default.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", name, raw, err)
		return fallback
	}
	return value
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	log.Printf("Received signal: %v. Shutting down gracefully...", sig)

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")
}
