package sys

import (
	"time"
)

// Config contains all the configs gathered from env vars.
// It is built once in main and passed down explicitly, so tests can run
// the whole app against their own values.
type Config struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Cors struct {
		Origins []string
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Auth struct {
		Secret   string
		TokenTTL time.Duration
	}
	Database struct {
		ConnectionURL    string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		CacheTTL         time.Duration
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}
