package config

import (
	"os"
	"strconv"
)

// Config carries all process-wide settings. It is built once at startup and
// handed to each component; nothing reads the environment at request time.
type Config struct {
	ListenAddr      string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	ClaudeModel     string
	EbayFeeRate     float64
	GradingAllInUSD float64
	LogLevel        string
	LogFile         string
}

func Load() *Config {
	return &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8080"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		ClaudeModel:     getEnv("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		EbayFeeRate:     getEnvFloat("EBAY_FEE_RATE", 0.135),
		GradingAllInUSD: getEnvFloat("GRADING_ALL_IN_USD", 35),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

// getEnvFloat reads a float-valued variable. Unset or unparsable values fall
// back to the default rather than failing startup.
func getEnvFloat(key string, defaultVal float64) float64 {
	val, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
