package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/wardenlabs/alarm-console/pkg/common"
	"github.com/wardenlabs/alarm-console/pkg/console"
	"github.com/wardenlabs/alarm-console/pkg/db"
	consoleHttp "github.com/wardenlabs/alarm-console/pkg/http"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	consoleDbType := os.Getenv(common.EnvKeyConsoleDBType)
	switch consoleDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector())
	default:
		log.Fatal("Unknown CONSOLE_DB_TYPE: " + consoleDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyConsoleHttpHostPort))

	jwtSecret := strings.TrimSpace(os.Getenv(common.EnvKeyConsoleJwtSecret))
	if jwtSecret == "" {
		log.Fatal("CONSOLE_JWT_SECRET must be set")
	}

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyConsoleDefaultRate), 64); err != nil {
		log.Fatal("Invalid CONSOLE_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyConsoleDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid CONSOLE_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	logger := common.GetLogger()

	consoleCore := console.Console{
		Db:        *dbInstance,
		JwtSecret: jwtSecret,
	}
	consoleCore.WithServices(console.ServiceOpts{
		Alarm:   consoleCore.GetIAlarm(),
		Profile: consoleCore.GetIProfile(),
		Auth:    consoleCore.GetIAuth(),
	})

	if gatewayURL := strings.TrimSpace(os.Getenv(common.EnvKeyConsoleNotifyGatewayURL)); gatewayURL != "" {
		consoleCore.Notifier = console.NewGatewayNotifier(gatewayURL)
		logger.Info("Notification gateway configured", zap.String("url", gatewayURL))
	}

	if natsURL := strings.TrimSpace(os.Getenv(common.EnvKeyConsoleNatsURL)); natsURL != "" {
		publisher, err := console.NewNatsPublisher(natsURL)
		if err != nil {
			log.Fatalf("Failed to connect to NATS at %s: %v", natsURL, err)
		}
		defer publisher.Close()
		consoleCore.Publisher = publisher
		logger.Info("NATS publisher configured", zap.String("url", natsURL))
	}

	if os.Getenv(common.EnvKeyConsoleSeedDemo) == "true" {
		if err := console.SeedDemoData(dbInstance, 8, 25); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	if sweepIntervalStr := strings.TrimSpace(os.Getenv(common.EnvKeyConsoleSweepInterval)); sweepIntervalStr != "" {
		sweepInterval, err := time.ParseDuration(sweepIntervalStr)
		if err != nil || sweepInterval <= 0 {
			log.Fatal("Invalid CONSOLE_SWEEP_INTERVAL, should be a positive duration like 1m")
		}
		sweeper := console.NewSweeper(&consoleCore, sweepInterval)
		sweeper.Start(context.Background())
		logger.Info("Auto-close sweeper started", zap.Duration("interval", sweepInterval))
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	logger.Info("Starting HTTP server on port " + httpHostPort)
	rs := &consoleHttp.RestfulServer{
		Server:           gin.Default(),
		Console:          &consoleCore,
		RateLimiterStore: console.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
