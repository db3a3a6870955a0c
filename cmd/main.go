package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/algoarena.net/internal/adapter/crypto"
	"gitlab.com/algoarena.net/internal/adapter/judge0"
	"gitlab.com/algoarena.net/internal/adapter/postgres/contestrepository"
	"gitlab.com/algoarena.net/internal/adapter/postgres/problemrepository"
	"gitlab.com/algoarena.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/algoarena.net/internal/adapter/postgres/testcaserepository"
	"gitlab.com/algoarena.net/internal/adapter/postgres/userrepository"
	"gitlab.com/algoarena.net/internal/adapter/redis/testcasecache"
	"gitlab.com/algoarena.net/internal/config"
	auth2 "gitlab.com/algoarena.net/internal/core/services/auth"
	"gitlab.com/algoarena.net/internal/core/services/judging"
	logger2 "gitlab.com/algoarena.net/internal/global/logger"
	http2 "gitlab.com/algoarena.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting judge service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()

	// SECONDARY PORTS
	userPort := userrepository.New(db, logger)
	problemPort := problemrepository.New(db, logger)
	testCasePort := testcasecache.New(redisClient, testcaserepository.New(db, logger), logger)
	submissionPort := submissionrepository.New(db, logger)
	contestPort := contestrepository.New(db, logger)
	runnerClient := judge0.NewClient(sysCfg.Judge0Config, logger)

	// PRIMARY PORTS
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	// services
	judgingSvc := judging.NewJudgingService(problemPort, testCasePort, submissionPort, contestPort, runnerClient, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(judgingSvc, problemPort, testCasePort, ggAuth, localAuth)

	// server
	httpServer := http2.NewServer(8082, "judgeService", *serviceProvider, sysCfg.GGAuthConfig, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}
	ctxBg := context.Background()
	httpServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
