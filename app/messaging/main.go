package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notes-app/app/api/handlers"
	"github.com/ribgsilva/notes-app/app/messaging/consumers/v1/notes"
	notebus "github.com/ribgsilva/notes-app/business/v1/note"
	notestore "github.com/ribgsilva/notes-app/persistence/v1/note"
	"github.com/ribgsilva/notes-app/platform/env"
	"github.com/ribgsilva/notes-app/platform/logger"
	"github.com/ribgsilva/notes-app/sys"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"
	"gocloud.dev/pubsub/awssnssqs"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	log, err := logger.New("Notes-Messaging")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func(log *zap.SugaredLogger) {
		_ = log.Sync()
	}(log)

	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =======================================================================================================
	// Setup max procs
	if _, err := maxprocs.Set(); err != nil {
		return fmt.Errorf("maxprocs: %w", err)
	}
	log.Infow("startup", "GOMAXPROCS", runtime.GOMAXPROCS(0))

	// =======================================================================================================
	// Setup configs

	_ = godotenv.Load()

	var cfg sys.Config
	cfg.Http.Port = env.OrDefault(log, "HTTP_PORT", "8081")
	cfg.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/notes?parseTime=true")
	cfg.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	cfg.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	cfg.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	cfg.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	cfg.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	cfg.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	cfg.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	cfg.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	cfg.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-messaging")
	cfg.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	cfg.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	cfg.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	cfg.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
	cfg.Messaging.TopicName = env.Must(log, "MESSAGING_TOPIC_NAME")
	cfg.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	cfg.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	cfg.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup resources

	// mysql
	var db *sql.DB
	if err := func() error {
		mysqlDb, err := sql.Open("mysql", cfg.Database.ConnectionURL)
		if err != nil {
			return fmt.Errorf("error to connect to database: %w", err)
		}
		dbCtx, dbCancel := context.WithTimeout(context.Background(), cfg.Database.PingTimeout)
		defer dbCancel()
		if err := mysqlDb.PingContext(dbCtx); err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		db = mysqlDb
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()

	// redis
	// doing in a func, so I can use defer to cancel the contexts
	var rdb *redis.Client
	if err := func() error {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.ConnectionURL,
			Username: cfg.Cache.User,
			Password: cfg.Cache.Pass,
		})
		rdsCtx, rdsCancel := context.WithTimeout(context.Background(), cfg.Cache.PingTimeout)
		defer rdsCancel()
		if err := rdb.Ping(rdsCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to redis: %w", err)
		}
		return nil
	}(); err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Errorf("could not close redis conn gracefully: %s", err)
		}
	}()

	// =======================================================================================================
	// NR

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.Licence),
		newrelic.ConfigEnabled(cfg.NewRelic.Enabled),
	)
	if err != nil {
		return err
	}
	if err := nrApp.WaitForConnection(cfg.NewRelic.ConnectionTimeout); err != nil {
		return err
	}
	defer nrApp.Shutdown(cfg.NewRelic.ShutdownTimeout)

	// =======================================================================================================
	// Build cores

	noteCore := notebus.NewCore(log, notestore.NewStore(log, db, rdb,
		cfg.Database.OperationTimeout, cfg.Cache.OperationTimeout, cfg.Cache.CacheTTL))

	// =======================================================================================================
	// Messaging configuration

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		return err
	}

	sqsCli := sqs.NewFromConfig(awsCfg)

	subscription := awssnssqs.OpenSubscriptionV2(
		context.Background(),
		sqsCli,
		cfg.Messaging.TopicName,
		&awssnssqs.SubscriptionOptions{
			Raw:      true,
			WaitTime: cfg.Messaging.WaitTime,
		})

	defer func() {
		stdCtx, stdCancel := context.WithTimeout(context.Background(), cfg.Messaging.ShutdownTimeout)
		defer stdCancel()

		if err := subscription.Shutdown(stdCtx); err != nil {
			log.Errorf("could not stop subscription gracefully: %s", err)
		}
	}()

	// =======================================================================================================
	// Healthcheck server

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	handlers.MapDefaults(router)

	svr := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Http.Port),
		Handler: router,
	}

	go func() {
		log.Info("started healthcheck http server")
		if err := svr.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("error in healthcheck http server: %s", err)
		}
	}()

	// =======================================================================================================
	// App start and shutdown

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		sig := <-shutdown
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)
		cancelFunc()
	}()

	if err := notes.Consume(withCancel, log, noteCore, subscription, cfg.Messaging.MaxWorkers); err != nil {
		return fmt.Errorf("listener error: %w", err)
	}

	return nil
}
