package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	GameServer GameServerConfig `mapstructure:"gameserver"`
	Feed       FeedConfig       `mapstructure:"feed"`
	Inventory  InventoryConfig  `mapstructure:"inventory"`
	Profile    ProfileConfig    `mapstructure:"profile"`
	LiveBets   LiveBetsConfig   `mapstructure:"livebets"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"ssl"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
}

// GameServerConfig holds the coin-flip game server connection settings
type GameServerConfig struct {
	URL      string        `mapstructure:"url"`
	WSURL    string        `mapstructure:"ws_url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	RetryMax int           `mapstructure:"retry_max"`
}

// FeedConfig controls how snapshots are pulled from the game server
type FeedConfig struct {
	Mode         string        `mapstructure:"mode"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// InventoryConfig holds inventory listing configuration
type InventoryConfig struct {
	PageSize int `mapstructure:"page_size"`
}

// ProfileConfig holds profile page behaviour
type ProfileConfig struct {
	APIURL            string        `mapstructure:"api_url"`
	Timeout           time.Duration `mapstructure:"timeout"`
	RetryMax          int           `mapstructure:"retry_max"`
	FilterDebounce    time.Duration `mapstructure:"filter_debounce"`
	LoadMoreThreshold int           `mapstructure:"load_more_threshold"`
}

// LiveBetsConfig holds live bets panel behaviour
type LiveBetsConfig struct {
	HoverDelay time.Duration `mapstructure:"hover_delay"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Feed modes
const (
	FeedModePoll = "poll"
	FeedModePush = "push"
)

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.Database.DSN()
}

// DSN returns the gorm/postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.Name,
		d.SSLMode,
	)
}

// MigrateURL returns the connection URL used by golang-migrate
func (d DatabaseConfig) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Name,
		d.SSLMode,
	)
}

// GetServerAddress returns the server address for binding
func (c *Config) GetServerAddress() string {
	port := c.Server.Port
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("%s:%s", c.Server.Host, port)
}

// ApplyDefaults fills in zero values with the service defaults
func (c *Config) ApplyDefaults() {
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = 30 * time.Second
	}
	if c.GameServer.Timeout <= 0 {
		c.GameServer.Timeout = 10 * time.Second
	}
	if c.GameServer.RetryMax <= 0 {
		c.GameServer.RetryMax = 3
	}
	if c.Feed.Mode == "" {
		c.Feed.Mode = FeedModePoll
	}
	if c.Feed.PollInterval <= 0 {
		c.Feed.PollInterval = time.Second
	}
	if c.Inventory.PageSize <= 0 {
		c.Inventory.PageSize = 20
	}
	if c.Profile.Timeout <= 0 {
		c.Profile.Timeout = 5 * time.Second
	}
	if c.Profile.RetryMax <= 0 {
		c.Profile.RetryMax = 2
	}
	if c.Profile.FilterDebounce <= 0 {
		c.Profile.FilterDebounce = time.Second
	}
	if c.Profile.LoadMoreThreshold <= 0 {
		c.Profile.LoadMoreThreshold = 19
	}
	if c.LiveBets.HoverDelay <= 0 {
		c.LiveBets.HoverDelay = 500 * time.Millisecond
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("FLIPSIDE_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
