package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort    string        `mapstructure:"SERVER_PORT"`
	PostgresURL   string        `mapstructure:"POSTGRES_URL"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	ProfilesDir   string        `mapstructure:"PROFILES_DIR"`
	RoutesFile    string        `mapstructure:"ROUTES_FILE"`
	CacheTTL      time.Duration `mapstructure:"CACHE_TTL"`
}

func Load() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("SERVER_PORT", ":8080")
	v.SetDefault("POSTGRES_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("PROFILES_DIR", "共通資源/profiles")
	v.SetDefault("ROUTES_FILE", "")
	v.SetDefault("CACHE_TTL", "1h")

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}
