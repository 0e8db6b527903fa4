package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingBackendURL = errors.New("backend_url is required (flag --backend-url, PAINEL_BACKEND_URL or BACKEND_URL)")

// ClientConfig configura o painel. A URL base é a única configuração obrigatória.
type ClientConfig struct {
	BackendURL  string        `mapstructure:"backend_url"`
	WSURL       string        `mapstructure:"ws_url"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	LogLevel    string        `mapstructure:"log_level"`
	LogFile     string        `mapstructure:"log_file"`
}

func SetClientDefaults(v *viper.Viper) {
	v.SetDefault("backend_url", "")
	v.SetDefault("ws_url", "")
	v.SetDefault("http_timeout", 10*time.Second)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_file", "")
}

// InitClientViper lê painel.yaml (se houver) e as variáveis PAINEL_*.
// BACKEND_URL sem prefixo também é aceita.
func InitClientViper(v *viper.Viper, cfgFile string) {
	SetClientDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("painel")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.config/painel")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("PAINEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("backend_url", "PAINEL_BACKEND_URL", "BACKEND_URL")

	// arquivo é opcional
	_ = v.ReadInConfig()
}

func LoadClient(v *viper.Viper) (*ClientConfig, error) {
	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.BackendURL = strings.TrimRight(strings.TrimSpace(cfg.BackendURL), "/")
	if cfg.BackendURL == "" {
		return nil, ErrMissingBackendURL
	}
	if _, err := url.ParseRequestURI(cfg.BackendURL); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}
	return &cfg, nil
}
