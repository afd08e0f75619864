package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Fanout    FanoutConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// FanoutConfig 每個 alert 的外部通知設定
type FanoutConfig struct {
	EndpointURL string
	Timezone    string
}

// SchedulerConfig 生命週期排程設定
type SchedulerConfig struct {
	Interval            time.Duration
	ActivationThreshold time.Duration
	ClosureThreshold    time.Duration
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:    GetServerConfig(),
		Database:  GetDatabaseConfig(),
		Redis:     GetRedisConfig(),
		Fanout:    GetFanoutConfig(),
		Scheduler: GetSchedulerConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Addr: ":8081"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Fanout: FanoutConfig{
			EndpointURL: "http://localhost:9999/notify",
			Timezone:    "Asia/Jerusalem",
		},
		Scheduler: SchedulerConfig{
			Interval:            time.Minute,
			ActivationThreshold: time.Hour,
			ClosureThreshold:    24 * time.Hour,
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Addr: getEnv("SERVER_ADDR", ":8080"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetFanoutConfig() FanoutConfig {
	return FanoutConfig{
		EndpointURL: getEnv("FANOUT_ENDPOINT_URL", "http://localhost:9000/notify"),
		Timezone:    getEnv("FANOUT_TIMEZONE", "Asia/Jerusalem"),
	}
}

func GetSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		Interval:            getDurationEnv("SCHEDULER_INTERVAL", time.Minute),
		ActivationThreshold: getDurationEnv("ACTIVATION_THRESHOLD", time.Hour),
		ClosureThreshold:    getDurationEnv("CLOSURE_THRESHOLD", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}
	return d
}
