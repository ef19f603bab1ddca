package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const DefaultConfigFile = "config.yaml"

type Logging struct {
	Level string `mapstructure:"level"`
}

type HTTPServer struct {
	Port           string   `mapstructure:"port"`
	CORSOrigins    []string `mapstructure:"cors_origins"`
	TimeoutSeconds int      `mapstructure:"timeout_seconds"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

func (c HTTPClient) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type Cache struct {
	TTLSeconds     int   `mapstructure:"ttl_seconds"`
	PairTTLSeconds int   `mapstructure:"pair_ttl_seconds"`
	PairMaxItems   int64 `mapstructure:"pair_max_items"`
}

type NBRB struct {
	URL string `mapstructure:"url"`
}

type Binance struct {
	BaseURL           string  `mapstructure:"base_url"`
	QuoteAsset        string  `mapstructure:"quote_asset"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type Breaker struct {
	ErrorThreshold   int `mapstructure:"error_threshold"`
	SuccessThreshold int `mapstructure:"success_threshold"`
	TimeoutSeconds   int `mapstructure:"timeout_seconds"`
}

type Snapshot struct {
	Path string `mapstructure:"path"`
}

type Maps struct {
	RouteURL  string `mapstructure:"route_url"`
	SearchURL string `mapstructure:"search_url"`
}

type Format struct {
	Locale string `mapstructure:"locale"`
}

type Scraper struct {
	URL       string        `mapstructure:"url"`
	Interval  time.Duration `mapstructure:"interval"`
	UserAgent string        `mapstructure:"user_agent"`
}

type AppConfig struct {
	Logging    Logging    `mapstructure:"logging"`
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Cache      Cache      `mapstructure:"cache"`
	NBRB       NBRB       `mapstructure:"nbrb"`
	Binance    Binance    `mapstructure:"binance"`
	Breaker    Breaker    `mapstructure:"breaker"`
	Snapshot   Snapshot   `mapstructure:"snapshot"`
	Maps       Maps       `mapstructure:"maps"`
	Format     Format     `mapstructure:"format"`
	Scraper    Scraper    `mapstructure:"scraper"`
}

// Init reads .env and the YAML config file, both optional, then applies env
// overrides. An empty path means DefaultConfigFile.
func Init(path string) (*AppConfig, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		logrus.WithField("path", path).Warn("Config file not found, using defaults")
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.timeout_seconds", 30)
	v.SetDefault("http_client.timeout_seconds", 10)

	v.SetDefault("cache.ttl_seconds", 3600)
	v.SetDefault("cache.pair_ttl_seconds", 30)
	v.SetDefault("cache.pair_max_items", 1000)

	v.SetDefault("nbrb.url", "https://api.nbrb.by/exrates/rates?periodicity=0")
	v.SetDefault("binance.base_url", "https://api.binance.com")
	v.SetDefault("binance.quote_asset", "USDT")
	v.SetDefault("binance.requests_per_second", 10)

	v.SetDefault("breaker.error_threshold", 5)
	v.SetDefault("breaker.success_threshold", 1)
	v.SetDefault("breaker.timeout_seconds", 30)

	v.SetDefault("snapshot.path", "bank_rates.json")
	v.SetDefault("maps.route_url", "https://yandex.com/maps/?rtext=")
	v.SetDefault("maps.search_url", "https://yandex.com/maps/?text=")
	v.SetDefault("format.locale", "en")

	v.SetDefault("scraper.url", "https://myfin.by/currency/minsk")
	v.SetDefault("scraper.interval", "30m")
}

func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	_ = v.BindEnv("cache.ttl_seconds", "CACHE_TTL_SECONDS")
	_ = v.BindEnv("cache.pair_ttl_seconds", "CACHE_PAIR_TTL_SECONDS")

	// upstream feeds
	_ = v.BindEnv("nbrb.url", "NBRB_API_URL")
	_ = v.BindEnv("binance.base_url", "BINANCE_API_URL")
	_ = v.BindEnv("binance.requests_per_second", "BINANCE_RPS")

	_ = v.BindEnv("snapshot.path", "BANK_RATES_PATH")
	_ = v.BindEnv("format.locale", "FORMAT_LOCALE")

	_ = v.BindEnv("scraper.url", "MYFIN_URL")
	_ = v.BindEnv("scraper.interval", "SCRAPER_INTERVAL")
	_ = v.BindEnv("scraper.user_agent", "SCRAPER_USER_AGENT")
}
