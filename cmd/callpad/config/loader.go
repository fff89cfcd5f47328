package config

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/callpad-io/callpad/internal/chains"
	"github.com/callpad-io/callpad/internal/constants"
)

//go:embed config.yaml
var embeddedConfigYAML []byte

type ServerSettings struct {
	Host string
	Port string
}

type WalletSettings struct {
	Endpoints      []string
	ProbeTimeoutMS int `mapstructure:"ProbeTimeoutMS"`
	PollIntervalMS int `mapstructure:"PollIntervalMS"`
	AutoConnect    bool
}

type Config struct {
	Server   ServerSettings
	Wallet   WalletSettings
	Networks []chains.Chain
}

func (w WalletSettings) ProbeTimeout() time.Duration {
	return time.Duration(w.ProbeTimeoutMS) * time.Millisecond
}

func (w WalletSettings) PollInterval() time.Duration {
	return time.Duration(w.PollIntervalMS) * time.Millisecond
}

// Load reads the embedded defaults, merges an optional config file from
// ~/.config/callpad or the working directory, and applies CALLPAD_*
// environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(embeddedConfigYAML)); err != nil {
		return nil, errors.Wrap(err, "read embedded config")
	}

	v.SetConfigName("config")
	home, _ := os.UserHomeDir()
	v.AddConfigPath(filepath.Join(home, ".config", constants.AppName))
	v.AddConfigPath(".")
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "merge config file")
		}
	}

	v.SetEnvPrefix(strings.ToUpper(constants.AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if len(cfg.Wallet.Endpoints) == 0 {
		return nil, errors.New("config: no wallet endpoints configured")
	}
	return &cfg, nil
}
