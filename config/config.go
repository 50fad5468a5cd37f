package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DatabaseDSN string

	AccessSecret    string
	RefreshSecret   string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string

	CORSOrigins string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: env file not found or could not be loaded:", err)
		}
	}

	return Config{
		ServerPort:  getEnv("SERVER_PORT", ":8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		AccessSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		RefreshSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		// Access tokens run a week by default, matching the source system.
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", 7*24*time.Hour),
		RefreshTokenTTL: getDuration("REFRESH_TOKEN_TTL", 30*24*time.Hour),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getEnv("KAFKA_TOPIC", "property-portal.events"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid duration for %s, using default %s", key, def)
	}
	return def
}
