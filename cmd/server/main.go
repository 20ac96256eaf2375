package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/VIVEGHA/ColdStoragebackend/pkg/auth"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/coldstore"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/common"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/db"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/feed"
	coldHttp "github.com/VIVEGHA/ColdStoragebackend/pkg/http"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/metrics"
	"github.com/VIVEGHA/ColdStoragebackend/pkg/scheduler"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	coldDbType := os.Getenv(common.EnvKeyDBType)
	switch coldDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown COLD_DB_TYPE: " + coldDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyHTTPHostPort))

	feedURL := strings.TrimSpace(os.Getenv(common.EnvKeyFeedURL))
	if feedURL == "" {
		log.Fatal("COLD_FEED_URL not set in .env, should be the telemetry channel endpoint")
	}

	var pollSeconds int64
	var feedRate float64
	var feedBurst int64

	if pollSeconds, err = strconv.ParseInt(os.Getenv(common.EnvKeyPollSeconds), 10, 64); err != nil {
		log.Fatal("Invalid COLD_POLL_SECONDS, or not set in .env, should be an int value")
	}

	if feedRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyFeedRate), 64); err != nil {
		log.Fatal("Invalid COLD_FEED_RATE, or not set in .env, should be a float64 value")
	}

	if feedBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyFeedBurst), 10, 64); err != nil {
		log.Fatal("Invalid COLD_FEED_BURST, or not set in .env, should be an int value")
	}

	jwtSecret := os.Getenv(common.EnvKeyJWTSecret)
	if jwtSecret == "" {
		log.Fatal("COLD_JWT_SECRET not set in .env, should be the token signing secret")
	}

	var tokenTTLHours int64
	if tokenTTLHours, err = strconv.ParseInt(os.Getenv(common.EnvKeyTokenTTLHours), 10, 64); err != nil {
		log.Fatal("Invalid COLD_TOKEN_TTL_HOURS, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	metrics.Init()

	feedClient := feed.NewClient(nil, feedURL, rate.Limit(feedRate), int(feedBurst))

	cold := coldstore.ColdStore{
		Db:   *dbInstance,
		Feed: feedClient,
	}
	cold.WithServices(coldstore.ServiceOpts{
		Reading:   cold.GetIReading(),
		Ingest:    cold.GetIIngest(),
		Analysis:  cold.GetIAnalysis(),
		Alert:     cold.GetIAlert(),
		Threshold: cold.GetIThreshold(),
	})

	authService := &auth.Auth{
		Db:       *dbInstance,
		Secret:   []byte(jwtSecret),
		TokenTTL: time.Duration(tokenTTLHours) * time.Hour,
	}

	sched := scheduler.New(time.Duration(pollSeconds)*time.Second, &cold)
	if err := sched.Start(); err != nil {
		log.Fatalf("scheduler failed to start: %v", err)
	}
	defer sched.Stop()

	logger.Info("Polling scheduler started",
		zap.Int64("interval_seconds", pollSeconds),
		zap.String("feed_url", feedURL))

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	if common.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rs := &coldHttp.RestfulServer{
		Server: gin.Default(),
		Cold:   &cold,
		Auth:   authService,
	}
	rs.Setup()

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
