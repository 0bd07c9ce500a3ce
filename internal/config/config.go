package config

import (
	"fmt"
	"strings"

	"github.com/reparto-pfr/reparto-go/pkg/reparto"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Chart  ChartConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string
}

// DataConfig holds dataset locations
type DataConfig struct {
	Dir   string
	Files map[reparto.Dataset]string
}

// ChartConfig holds scatter chart dimensions
type ChartConfig struct {
	Width  int
	Height int
}

// fileKeys maps config keys to the dataset they name.
var fileKeys = map[string]reparto.Dataset{
	"files.daily_report":     reparto.DatasetDailyReport,
	"files.monthly_report":   reparto.DatasetMonthlyReport,
	"files.stops":            reparto.DatasetStops,
	"files.stop_coordinates": reparto.DatasetStopCoordinates,
	"files.daily_events":     reparto.DatasetDailyEvents,
	"files.monthly_events":   reparto.DatasetMonthlyEvents,
}

// New returns a viper instance reading REPARTO_* environment variables,
// with defaults set.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("REPARTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := reparto.DefaultOptions()
	v.SetDefault("addr", ":8501")
	v.SetDefault("data-dir", defaults.DataDir)
	v.SetDefault("chart.width", 1200)
	v.SetDefault("chart.height", 500)
	for key, d := range fileKeys {
		v.SetDefault(key, defaults.Files[d])
	}
	return v
}

// Load reads the optional config file and builds a Config from v.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr: v.GetString("addr"),
		},
		Data: DataConfig{
			Dir:   v.GetString("data-dir"),
			Files: make(map[reparto.Dataset]string, len(fileKeys)),
		},
		Chart: ChartConfig{
			Width:  v.GetInt("chart.width"),
			Height: v.GetInt("chart.height"),
		},
	}
	for key, d := range fileKeys {
		cfg.Data.Files[d] = v.GetString(key)
	}

	if cfg.Data.Dir == "" {
		return nil, fmt.Errorf("data directory must not be empty")
	}
	if cfg.Chart.Width <= 0 || cfg.Chart.Height <= 0 {
		return nil, fmt.Errorf("invalid chart size %dx%d", cfg.Chart.Width, cfg.Chart.Height)
	}
	return cfg, nil
}

// Options converts the data settings to loader options.
func (c *Config) Options() reparto.Options {
	return reparto.Options{
		DataDir: c.Data.Dir,
		Files:   c.Data.Files,
	}
}
