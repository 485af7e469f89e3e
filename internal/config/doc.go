// Package config loads the kets CLI configuration with viper.
package config
