package config

import (
	"strconv"
	"time"
)

// Judge0Config configures the external runner client. APIKey/APIHost are the
// RapidAPI headers and may stay empty against a self-hosted instance.
type Judge0Config struct {
	BaseURL string
	APIKey  string
	APIHost string
	Timeout time.Duration
}

func NewJudge0Config() *Judge0Config {
	timeoutSec, err := strconv.Atoi(getEnv("JUDGE0_TIMEOUT_SEC", ""))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 15
	}
	return &Judge0Config{
		BaseURL: getEnv("JUDGE0_BASE_URL", "http://localhost:2358"),
		APIKey:  getEnv("JUDGE0_API_KEY", ""),
		APIHost: getEnv("JUDGE0_API_HOST", ""),
		Timeout: time.Duration(timeoutSec) * time.Second,
	}
}
