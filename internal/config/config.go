package config

import (
	"time"

	"github.com/spf13/viper"
)

const DefaultSpoolDir = "./spool"

type (
	Config struct {
		HTTP
		Spool
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Spool struct {
		Dir             string        // Directory generated packages are written to
		Retention       time.Duration // How long generated packages are kept
		CleanupSchedule string        // Cron format: "*/15 * * * *" = every 15 minutes
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("spool_dir", DefaultSpoolDir)
	v.SetDefault("spool_retention", "1h")
	v.SetDefault("spool_cleanup_schedule", "*/15 * * * *")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Spool: Spool{
			Dir:             v.GetString("SPOOL_DIR"),
			Retention:       v.GetDuration("SPOOL_RETENTION"),
			CleanupSchedule: v.GetString("SPOOL_CLEANUP_SCHEDULE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
