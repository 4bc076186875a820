package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// LoginRateLimitPerMin caps logins per client IP. Needs redis.
	LoginRateLimitPerMin int `mapstructure:"login_rate_limit_per_min"`
}

type DatabaseConfig struct {
	Driver  string        `mapstructure:"driver"` // "mongo" or "memory"
	URI     string        `mapstructure:"uri"`
	Name    string        `mapstructure:"name"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// Enabled reports whether enough is configured to talk to a bucket.
func (c S3Config) Enabled() bool {
	return c.BucketName != "" && c.Region != ""
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Stdout bool   `mapstructure:"stdout"`
	JSON   bool   `mapstructure:"json"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// RedisConfig backs the login rate limiter. An empty Addr disables it.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (Config, error) {
	var config Config

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Nested keys map to env vars with the replacer, e.g. jwt.expiration -> JWT_EXPIRATION.
	// Only keys with a default are picked up by Unmarshal.
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return config, errors.Wrap(err, "read config file")
		}
		// no file: defaults and env vars only
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "unmarshal config")
	}

	if err := config.validate(); err != nil {
		return config, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.login_rate_limit_per_min", 15)
	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "gym_tracker")
	v.SetDefault("database.timeout", "5s")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "168h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdout", true)
	v.SetDefault("log.json", false)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverMongo, DriverMemory:
	default:
		return errors.Errorf("unknown database driver %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must be set")
	}
	if c.JWT.Expiration <= 0 {
		return errors.Errorf("jwt.expiration must be positive, got %s", c.JWT.Expiration)
	}
	if c.Redis.Addr != "" && c.Server.LoginRateLimitPerMin <= 0 {
		return errors.Errorf("server.login_rate_limit_per_min must be positive, got %d", c.Server.LoginRateLimitPerMin)
	}
	return nil
}
