package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env"`

	Database    DatabaseConfigs    `toml:"database"`
	ApiServer   ServerConfigs      `toml:"api_server"`
	Auth        AuthConfigs        `toml:"auth"`
	Redis       RedisConfigs       `toml:"redis"`
	Progression ProgressionConfigs `toml:"progression"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`

	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

type AuthConfigs struct {
	TokenSecret     string        `toml:"token_secret"`
	TokenExpiration time.Duration `toml:"token_expiration"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type ProgressionConfigs struct {
	// CheckInPoints is the fixed XP bonus for the first check-in of a day.
	CheckInPoints int `toml:"check_in_points"`

	// LevelStep is the amount of XP between two levels.
	LevelStep int `toml:"level_step"`

	// LeaderBoardSize is the candidate pool fetched per window; only the
	// first LeaderBoardTop entries are returned to clients.
	LeaderBoardSize int `toml:"leader_board_size"`
	LeaderBoardTop  int `toml:"leader_board_top"`

	LeaderBoardCacheTTL time.Duration `toml:"leader_board_cache_ttl"`
}
