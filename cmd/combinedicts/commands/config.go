package commands

import (
	"os"

	"combinedicts/lib/configutil"
	"combinedicts/lib/serviceutil"
)

type Config struct {
	TimeoutSeconds int    `json:"timeout_seconds"`
	UserAgent      string `json:"user_agent"`
	HistoryDb      string `json:"history_db"`
}

// readConfig loads config.json5 from the working directory. A missing
// file just means defaults.
func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	if cfg.HistoryDb == "" {
		cfg.HistoryDb = "history.db"
	}
	return cfg
}
