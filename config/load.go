package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Load builds the configuration from environment variables. If path is not
// empty, the TOML file at path is decoded first and env vars override it.
func Load(path string) (Configs, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, err
		}
	}

	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.Database.Host = getEnv("MYSQL_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("MYSQL_PORT", cfg.Database.Port)
	cfg.Database.Database = getEnv("MYSQL_DATABASE", cfg.Database.Database)
	cfg.Database.User = getEnv("MYSQL_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("MYSQL_PASSWORD", cfg.Database.Password)
	cfg.ApiServer.Host = getEnv("API_HOST", cfg.ApiServer.Host)
	cfg.ApiServer.Port = getEnv("API_PORT", cfg.ApiServer.Port)
	cfg.Auth.TokenSecret = getEnv("TOKEN_SECRET", cfg.Auth.TokenSecret)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)

	return cfg, nil
}

func defaults() Configs {
	return Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Port:         "8080",
			DefaultLimit: 20,
			MaxLimit:     100,
		},
		Auth: AuthConfigs{
			TokenExpiration: 24 * time.Hour,
		},
		Progression: ProgressionConfigs{
			CheckInPoints:       10,
			LevelStep:           500,
			LeaderBoardSize:     100,
			LeaderBoardTop:      10,
			LeaderBoardCacheTTL: time.Minute,
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}
