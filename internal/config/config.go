package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/hupe1980/kets/codec"
	"github.com/hupe1980/kets/persist"
)

// Store backends accepted by the "store" key.
const (
	StoreFile  = "file"
	StoreS3    = "s3"
	StoreMinio = "minio"
)

// S3Config selects an S3 bucket as the blob store.
type S3Config struct {
	Bucket   string `mapstructure:"bucket"`
	Prefix   string `mapstructure:"prefix"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

// MinioConfig selects a MinIO (or S3-compatible) bucket as the blob store.
type MinioConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Secure    bool   `mapstructure:"secure"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
}

// Config holds the runtime configuration of the kets CLI.
// Values are populated from .kets.yaml, KETS_* env vars, and CLI flags.
type Config struct {
	Store       string      `mapstructure:"store"`
	StoreDir    string      `mapstructure:"store_dir"`
	S3          S3Config    `mapstructure:"s3"`
	Minio       MinioConfig `mapstructure:"minio"`
	CacheBytes  int64       `mapstructure:"cache_bytes"`
	IOLimit     int64       `mapstructure:"io_limit"`
	MaxInFlight int64       `mapstructure:"max_inflight"`
	Codec       string      `mapstructure:"codec"`
	Compression string      `mapstructure:"compression"`
	Workers     int         `mapstructure:"workers"`
	LogLevel    string      `mapstructure:"log_level"`
	LogFormat   string      `mapstructure:"log_format"`
}

// EnvPrefix is the prefix of environment overrides, e.g. KETS_STORE_DIR or
// KETS_S3_BUCKET.
const EnvPrefix = "KETS"

// SetDefaults registers the built-in defaults and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("store", StoreFile)
	v.SetDefault("store_dir", ".")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "")
	v.SetDefault("s3.region", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("minio.endpoint", "localhost:9000")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.secure", false)
	v.SetDefault("minio.region", "")
	v.SetDefault("minio.bucket", "")
	v.SetDefault("minio.prefix", "")
	v.SetDefault("cache_bytes", 0)
	v.SetDefault("io_limit", 0)
	v.SetDefault("max_inflight", 0)
	v.SetDefault("codec", codec.Default.Name())
	v.SetDefault("compression", "none")
	v.SetDefault("workers", 1)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from v, applying built-in defaults for any values
// not set by config file, environment, or flags. A nil v uses the global
// viper instance.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values and required backend settings.
func (c Config) Validate() error {
	switch c.Store {
	case StoreFile:
		if c.StoreDir == "" {
			return fmt.Errorf("config: store_dir is required for the %s store", StoreFile)
		}
	case StoreS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("config: s3.bucket is required for the %s store", StoreS3)
		}
	case StoreMinio:
		if c.Minio.Bucket == "" || c.Minio.Endpoint == "" {
			return fmt.Errorf("config: minio.endpoint and minio.bucket are required for the %s store", StoreMinio)
		}
	default:
		return fmt.Errorf("config: unknown store %q (want %s, %s or %s)", c.Store, StoreFile, StoreS3, StoreMinio)
	}

	if c.CacheBytes < 0 || c.IOLimit < 0 || c.MaxInFlight < 0 {
		return fmt.Errorf("config: cache_bytes, io_limit and max_inflight must not be negative")
	}
	if _, ok := codec.ByName(c.Codec); !ok {
		return fmt.Errorf("config: unknown codec %q (want one of %s)", c.Codec, strings.Join(codec.Names(), ", "))
	}
	if _, err := persist.ParseCompression(c.Compression); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("config: unknown log_format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log_level: %w", err)
	}
	return l, nil
}

// PersistOptions returns the encoding options selected by c.
// c must have passed Validate.
func (c Config) PersistOptions() []persist.Option {
	cd, _ := codec.ByName(c.Codec)
	comp, _ := persist.ParseCompression(c.Compression)
	return []persist.Option{persist.WithCodec(cd), persist.WithCompression(comp)}
}
