package env

import (
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Must returns the result of searching an env var, and panics when the env var is not set
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Panic("missing required env var ", env)
	}
	return value
}

// OrDefault returns the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		return def
	}
	return value
}

// DurationDefault returns the result of searching an env var, if the env var value is empty, return a default value as time.Duration
func DurationDefault(log *zap.SugaredLogger, env, def string) time.Duration {
	orDefault := OrDefault(log, env, def)
	duration, err := time.ParseDuration(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as duration: ", err)
	}
	return duration
}

// BoolDefault returns the result of searching an env var, if the env var value is empty, return a default value as bool
func BoolDefault(log *zap.SugaredLogger, env, def string) bool {
	orDefault := OrDefault(log, env, def)
	value, err := strconv.ParseBool(orDefault)
	if err != nil {
		log.Warn("error parsing ", orDefault, " as bool: ", err)
	}
	return value
}
