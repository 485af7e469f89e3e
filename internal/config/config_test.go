package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"Store", cfg.Store, StoreFile},
		{"StoreDir", cfg.StoreDir, "."},
		{"CacheBytes", cfg.CacheBytes, int64(0)},
		{"Codec", cfg.Codec, "msgpack"},
		{"Compression", cfg.Compression, "none"},
		{"Workers", cfg.Workers, 1},
		{"LogLevel", cfg.LogLevel, "warn"},
		{"LogFormat", cfg.LogFormat, "text"},
		{"MinioEndpoint", cfg.Minio.Endpoint, "localhost:9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("KETS_STORE_DIR", "/tmp/bases")
	t.Setenv("KETS_WORKERS", "8")
	t.Setenv("KETS_COMPRESSION", "zstd")
	t.Setenv("KETS_S3_BUCKET", "bucket")
	t.Setenv("KETS_MINIO_SECURE", "true")
	t.Setenv("KETS_IO_LIMIT", "1048576")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bases", cfg.StoreDir)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, "zstd", cfg.Compression)
	assert.Equal(t, "bucket", cfg.S3.Bucket)
	assert.True(t, cfg.Minio.Secure)
	assert.Equal(t, int64(1<<20), cfg.IOLimit)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".kets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store: s3
s3:
  bucket: my-bases
  prefix: runs/1
cache_bytes: 1048576
codec: json
log_level: debug
log_format: json
`), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, StoreS3, cfg.Store)
	assert.Equal(t, "my-bases", cfg.S3.Bucket)
	assert.Equal(t, "runs/1", cfg.S3.Prefix)
	assert.Equal(t, int64(1<<20), cfg.CacheBytes)
	assert.Equal(t, "json", cfg.Codec)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg, err := Load(viper.New())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown store", func(c *Config) { c.Store = "ftp" }},
		{"empty store dir", func(c *Config) { c.StoreDir = "" }},
		{"s3 without bucket", func(c *Config) { c.Store = StoreS3 }},
		{"minio without bucket", func(c *Config) { c.Store = StoreMinio }},
		{"negative cache", func(c *Config) { c.CacheBytes = -1 }},
		{"negative io limit", func(c *Config) { c.IOLimit = -1 }},
		{"unknown codec", func(c *Config) { c.Codec = "xml" }},
		{"unknown compression", func(c *Config) { c.Compression = "gzip" }},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }},
		{"unknown format", func(c *Config) { c.LogFormat = "yaml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	cfg := valid()
	cfg.Store = StoreMinio
	cfg.Minio.Bucket = "bases"
	assert.NoError(t, cfg.Validate())
}

func TestPersistOptions(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Len(t, cfg.PersistOptions(), 2)
}
