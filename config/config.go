package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	// URL wins when set (postgres). File is the sqlite fallback.
	URL  string `mapstructure:"url"`
	File string `mapstructure:"file"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	TTL    time.Duration
	TTLHrs int `mapstructure:"ttl_hours"`
}

type UploadsConfig struct {
	Dir string `mapstructure:"dir"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// Load reads config.yaml from the given path and applies env overrides.
// Every key has a default, so a missing file is not an error.
func Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("database.file", "foodfrezn.db")
	viper.SetDefault("jwt.ttl_hours", 12)
	viper.SetDefault("uploads.dir", "static/uploads")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "text")
	viper.SetDefault("logger.output", "stdout")
	viper.SetDefault("logger.max_size", 100)
	viper.SetDefault("logger.max_backups", 5)
	viper.SetDefault("logger.max_age", 30)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Secrets and deploy-specific values come from the environment,
	// never from source.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}

	cfg.JWT.TTL = time.Duration(cfg.JWT.TTLHrs) * time.Hour

	return &cfg, nil
}
