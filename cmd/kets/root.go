package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/kets"
	"github.com/hupe1980/kets/blobstore"
	"github.com/hupe1980/kets/internal/config"
	"github.com/hupe1980/kets/persist"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *kets.Logger
	store  blobstore.BlobStore
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "kets",
		Short: "Inspect and transform bases of complex kets",
		Long: `kets reads and writes persisted bases in a blob store (a local directory,
S3 or MinIO). It can orthonormalize lossless bases, compress them to the compact
representation, and compare bases through their overlap matrix.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default .kets.yaml)")
	flags.String("store", config.StoreFile, "blob store backend: file, s3 or minio")
	flags.String("store-dir", ".", "root directory of the file store")
	flags.Int64("cache-bytes", 0, "size of the in-memory blob cache (0 disables it)")
	flags.Int64("io-limit", 0, "blob store throughput limit in bytes per second (0 means unlimited)")
	flags.Int64("max-inflight", 0, "maximum concurrent blob store requests (0 means unlimited)")
	flags.String("codec", "", "codec for written files: json, go-json or msgpack")
	flags.String("compression", "", "compression for written files: none, lz4 or zstd")
	flags.IntP("workers", "w", 1, "goroutines per operation (0 means GOMAXPROCS)")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("log-format", "", "log format: text or json")

	for key, flag := range map[string]string{
		"store":        "store",
		"store_dir":    "store-dir",
		"cache_bytes":  "cache-bytes",
		"io_limit":     "io-limit",
		"max_inflight": "max-inflight",
		"codec":        "codec",
		"compression":  "compression",
		"workers":      "workers",
		"log_level":    "log-level",
		"log_format":   "log-format",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(
		newInfoCmd(a),
		newListCmd(a),
		newOrthonormalizeCmd(a),
		newCompressCmd(a),
		newOverlapCmd(a),
		newCheckCmd(a),
		newKernelsCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := a.readConfig(cmd); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.LogFormat, level)

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	a.store = store
	return nil
}

func (a *app) readConfig(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		return nil
	}

	a.v.SetConfigName(".kets")
	a.v.SetConfigType("yaml")
	a.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
	}

	// It's fine if no config file is found; we use defaults.
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (a *app) persistOptions() []persist.Option {
	return append(a.cfg.PersistOptions(), persist.WithLogger(a.logger))
}

func newLogger(w io.Writer, format string, level slog.Level) *kets.Logger {
	if format == "json" {
		return kets.NewJSONLogger(w, level)
	}
	return kets.NewTextLogger(w, level)
}
