package config

// RedisConfig holds connection settings for the session store.
type RedisConfig struct {
	// Addr is the Redis host:port.
	Addr string
	// Password is the Redis AUTH password (empty for local development).
	Password string
	// DB is the Redis logical database number.
	DB int
}

// LoadRedisConfigFromEnv loads Redis configuration from environment variables.
func LoadRedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		Addr:     GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: GetEnv("REDIS_PASSWORD", ""),
		DB:       GetEnvInt("REDIS_DB", 0),
	}
}
