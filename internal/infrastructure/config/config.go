package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type Config struct {
	GRPCPort int
	HTTPPort int
	Kafka    KafkaConfig
	// RatesFile optionally overrides seed buckets from a YAML rate sheet.
	RatesFile string
	// SyncCron is the cron spec for scheduled provider refreshes; empty
	// disables scheduling.
	SyncCron string
	// RateProviders lists the provider names registered for refresh.
	RateProviders []string
	LogLevel      string
	LogFormat     string
	ServiceName   string
}

func Load() Config {
	return Config{
		GRPCPort:      getEnvInt("GRPC_PORT", 9094),
		HTTPPort:      getEnvInt("HTTP_PORT", 8094),
		Kafka: KafkaConfig{
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "pricing-events"),
		},
		RatesFile:     getEnv("RATES_FILE", ""),
		SyncCron:      getEnv("RATE_SYNC_CRON", "0 */6 * * *"),
		RateProviders: strings.Split(getEnv("RATE_PROVIDERS", "default"), ","),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
		ServiceName:   "pricing-engine",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
