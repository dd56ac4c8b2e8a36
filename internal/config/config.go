package config

import "os"

// Config holds server-level settings. MongoURI and RedisAddr may be empty,
// in which case the server runs without the corresponding backend.
type Config struct {
	HTTPPort  string
	MongoURI  string
	MongoDB   string
	RedisAddr string
}

func Load() *Config {
	return &Config{
		HTTPPort:  getEnv("PORT", "8080"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   getEnv("MONGO_DB", "fortitwin"),
		RedisAddr: os.Getenv("REDIS_URI"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
