package main

import (
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultConfigFileName = "bitdump.toml"
	defaultFormat         = FormatHex
	defaultLogLevel       = "info"
)

const (
	FormatHex    = "hex"
	FormatBinary = "bin"
	FormatTable  = "table"
)

var (
	defaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), "bitdump")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFileName)
)

type Config struct {
	ConfigFile  string `mapstructure:"config"`
	Format      string `mapstructure:"format"`
	LogLevel    string `mapstructure:"loglevel"`
	PrintConfig bool   `mapstructure:"printconfig"`
}

func defaultConfig() *Config {
	return &Config{
		ConfigFile: defaultConfigFile,
		Format:     defaultFormat,
		LogLevel:   defaultLogLevel,
	}
}

func loadConfig(cmd *cobra.Command) (*Config, error) {
	fileLocation := smutil.GetCanonicalPath(viper.GetString("config"))
	vip := viper.New()

	// A missing default config file is fine; flags cover everything.
	_ = loadConfigFile(fileLocation, vip)

	cfg := defaultConfig()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Ensure cli args are higher priority than the config file.
	ensureCLIFlags(cmd, cfg)

	switch cfg.Format {
	case FormatHex, FormatBinary, FormatTable:
	default:
		return nil, fmt.Errorf("invalid `Format`; expected: one of %v|%v|%v, given: %v",
			FormatHex, FormatBinary, FormatTable, cfg.Format)
	}

	return cfg, nil
}

func loadConfigFile(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		fileLocation = defaultConfigFile
	}

	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return nil
}

func ensureCLIFlags(cmd *cobra.Command, cfg *Config) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format, _ = cmd.Flags().GetString(f.Name)
		case "logLevel":
			cfg.LogLevel, _ = cmd.Flags().GetString(f.Name)
		case "printConfig":
			cfg.PrintConfig, _ = cmd.Flags().GetBool(f.Name)
		}
	})
}

func setFlags(cmd *cobra.Command, cfg *Config) {
	flags := cmd.Flags()

	flags.StringVar(&cfg.ConfigFile, "config",
		cfg.ConfigFile, "Path to configuration file")

	flags.StringVar(&cfg.Format, "format",
		cfg.Format, "Dump format: hex, bin or table")

	flags.StringVar(&cfg.LogLevel, "logLevel",
		cfg.LogLevel, "Log level (debug, info, warn, error, dpanic, panic, fatal)")

	flags.BoolVar(&cfg.PrintConfig, "printConfig",
		cfg.PrintConfig, "Print the used config and exit")
}
