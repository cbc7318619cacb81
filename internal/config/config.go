package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// Config collects the non-database settings read from the environment.
// Database settings stay in the database package, which owns its own DSN.
type Config struct {
	Port        int
	APIKey      string
	RedisAddr   string
	KafkaBroker string
	KafkaTopic  string
}

func Load() Config {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 8080
	}

	topic := os.Getenv("KAFKA_ORDER_TOPIC")
	if topic == "" {
		topic = "orders.placed"
	}

	return Config{
		Port:        port,
		APIKey:      os.Getenv("API_KEY"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		KafkaBroker: os.Getenv("KAFKA_BROKER"),
		KafkaTopic:  topic,
	}
}
