package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func LoadEnv(requiredVars []string) (map[string]string, error) {
	_ = godotenv.Load()

	envVars := make(map[string]string)

	for _, key := range requiredVars {
		value := os.Getenv(key)
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
		envVars[key] = value
	}

	return envVars, nil
}

// GetEnv returns the variable or fallback when it is unset.
func GetEnv(key, fallback string) string {
	_ = godotenv.Load()
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// SplitList splits a comma separated variable, dropping blanks and a leading "@".
func SplitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimPrefix(strings.TrimSpace(item), "@")
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func ConvertToMoscowTime(t time.Time) string {
	moscowLocation := time.FixedZone("Moscow Time", 3*60*60)
	return t.In(moscowLocation).Format("02.01.2006 15:04")
}
