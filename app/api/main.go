package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/ribgsilva/notes-app/app/api/docs"
	"github.com/ribgsilva/notes-app/app/api/handlers"
	notebus "github.com/ribgsilva/notes-app/business/v1/note"
	userbus "github.com/ribgsilva/notes-app/business/v1/user"
	notestore "github.com/ribgsilva/notes-app/persistence/v1/note"
	userstore "github.com/ribgsilva/notes-app/persistence/v1/user"
	"github.com/ribgsilva/notes-app/platform/env"
	"github.com/ribgsilva/notes-app/platform/logger"
	"github.com/ribgsilva/notes-app/platform/token"
	"github.com/ribgsilva/notes-app/sys"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/gin-swagger/swaggerFiles"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

// @title Notes API
// @version 1.0
// @description Token-authenticated personal notes service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log, err := logger.New("Notes-API")
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

	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	var cfg sys.Config
	cfg.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	cfg.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	cfg.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	cfg.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	cfg.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	cfg.Cors.Origins = strings.Split(env.OrDefault(log, "CORS_ORIGINS", "*"), ",")
	cfg.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	cfg.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+cfg.Http.Port)
	cfg.Auth.Secret = env.Must(log, "AUTH_SECRET")
	cfg.Auth.TokenTTL = env.DurationDefault(log, "AUTH_TOKEN_TTL", "24h")
	cfg.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@localhost:3306/notes?parseTime=true")
	cfg.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	cfg.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
	cfg.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	cfg.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	cfg.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	cfg.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	cfg.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	cfg.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
	cfg.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notes-api")
	cfg.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	cfg.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	cfg.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	cfg.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")

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

	tokens := token.New(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	users := userbus.NewCore(log, userstore.NewStore(log, db, cfg.Database.OperationTimeout), tokens)
	notes := notebus.NewCore(log, notestore.NewStore(log, db, rdb,
		cfg.Database.OperationTimeout, cfg.Cache.OperationTimeout, cfg.Cache.CacheTTL))

	// =======================================================================================================
	// Router configuration

	router := gin.New()
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/healthcheck"},
	}), gin.Recovery(), nrgin.Middleware(nrApp))

	corsCfg := cors.DefaultConfig()
	if len(cfg.Cors.Origins) == 1 && cfg.Cors.Origins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.Cors.Origins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	handlers.MapDefaults(router)
	handlers.MapApi(router, handlers.Config{
		Users:  users,
		Notes:  notes,
		Tokens: tokens,
	})

	docs.SwaggerInfo.Host = cfg.Swagger.Host
	url := ginSwagger.URL(fmt.Sprintf("%s://%s/swagger/doc.json", cfg.Swagger.Protocol, cfg.Swagger.Host))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// =======================================================================================================
	// App start and shutdown

	svr := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Http.Port),
		Handler:      router,
		ReadTimeout:  cfg.Http.ReadTimeout,
		WriteTimeout: cfg.Http.WriteTimeout,
		IdleTimeout:  cfg.Http.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("started http server")
		serverErrors <- svr.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := svr.Shutdown(ctx); err != nil {
			_ = svr.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}
