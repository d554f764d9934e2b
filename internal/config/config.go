package config

import (
	"log"
	"os"
)

type Config struct {
	Port       string
	APIBaseURL string
	StateDSN   string
	LogFile    string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	api := os.Getenv("API_BASE_URL")
	if api == "" {
		api = "http://localhost:8080/api"
	}
	dsn := os.Getenv("STATE_DSN")
	if dsn == "" {
		dsn = "homify_state.db" // client-state sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./homify.log"
	}

	cfg := Config{Port: port, APIBaseURL: api, StateDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s API_BASE_URL=%s STATE_DSN=%s LOG_FILE=%s", cfg.Port, cfg.APIBaseURL, cfg.StateDSN, cfg.LogFile)
	return cfg
}
