package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Default configuration values.
const (
	defaultServiceName    = "rijal"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8080
	defaultStartVolume    = 2
	defaultDBDriver       = "sqlite3"
	defaultDBDSN          = "rijal.db"
	defaultDBMaxConns     = 25
	defaultDBMaxIdleConns = 5
	defaultESURL          = "http://localhost:9200"
	defaultESIndex        = "narrator_records"
	defaultESMaxRetries   = 3
	defaultESTimeoutSec   = 30
	defaultESBulkSize     = 500
	defaultESRateLimit    = 10
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
)

// Config holds all configuration for the rijal service.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Extraction    ExtractionConfig    `yaml:"extraction"`
	Database      DatabaseConfig      `yaml:"database"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port"`
	Debug   bool   `yaml:"debug"`
}

// ExtractionConfig holds extraction pipeline settings.
type ExtractionConfig struct {
	StartVolume      int    `yaml:"start_volume"`
	LexiconFile      string `yaml:"lexicon_file"`
	StripDiacritics  bool   `yaml:"strip_diacritics"`
	OmitUnclassified bool   `yaml:"omit_unclassified"`
}

// DatabaseConfig holds database configuration. Driver is either
// "sqlite3" or "postgres".
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"`
	DSN             string        `yaml:"dsn"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// ElasticsearchConfig holds Elasticsearch configuration.
type ElasticsearchConfig struct {
	URL        string        `yaml:"url"`
	Username   string        `yaml:"username"`
	Password   string        `yaml:"password"`
	Index      string        `yaml:"index"`
	MaxRetries int           `yaml:"max_retries"`
	Timeout    time.Duration `yaml:"timeout"`
	BulkSize   int           `yaml:"bulk_size"`
	RateLimit  int           `yaml:"rate_limit"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load loads configuration from the specified path, merged with RIJAL_*
// environment overrides (e.g. RIJAL_EXTRACTION_START_VOLUME). An empty
// path yields defaults plus environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setViperDefaults(v)

	v.SetEnvPrefix("RIJAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	setDefaults(cfg)
	return cfg, nil
}

// setViperDefaults registers every config key so environment lookups see
// the full key set even when no config file is present.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("service.name", defaultServiceName)
	v.SetDefault("service.version", defaultServiceVersion)
	v.SetDefault("service.port", defaultServicePort)
	v.SetDefault("service.debug", false)

	v.SetDefault("extraction.start_volume", defaultStartVolume)
	v.SetDefault("extraction.lexicon_file", "")
	v.SetDefault("extraction.strip_diacritics", false)
	v.SetDefault("extraction.omit_unclassified", false)

	v.SetDefault("database.driver", defaultDBDriver)
	v.SetDefault("database.dsn", defaultDBDSN)
	v.SetDefault("database.max_connections", defaultDBMaxConns)
	v.SetDefault("database.max_idle_connections", defaultDBMaxIdleConns)
	v.SetDefault("database.connection_max_lifetime", time.Hour)

	v.SetDefault("elasticsearch.url", defaultESURL)
	v.SetDefault("elasticsearch.username", "")
	v.SetDefault("elasticsearch.password", "")
	v.SetDefault("elasticsearch.index", defaultESIndex)
	v.SetDefault("elasticsearch.max_retries", defaultESMaxRetries)
	v.SetDefault("elasticsearch.timeout", defaultESTimeoutSec*time.Second)
	v.SetDefault("elasticsearch.bulk_size", defaultESBulkSize)
	v.SetDefault("elasticsearch.rate_limit", defaultESRateLimit)

	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.format", defaultLogFormat)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setExtractionDefaults(&cfg.Extraction)
	setDatabaseDefaults(&cfg.Database)
	setElasticsearchDefaults(&cfg.Elasticsearch)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setExtractionDefaults(e *ExtractionConfig) {
	if e.StartVolume == 0 {
		e.StartVolume = defaultStartVolume
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = defaultDBDriver
	}
	if d.DSN == "" {
		d.DSN = defaultDBDSN
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setElasticsearchDefaults(e *ElasticsearchConfig) {
	if e.URL == "" {
		e.URL = defaultESURL
	}
	if e.Index == "" {
		e.Index = defaultESIndex
	}
	if e.MaxRetries == 0 {
		e.MaxRetries = defaultESMaxRetries
	}
	if e.Timeout == 0 {
		e.Timeout = defaultESTimeoutSec * time.Second
	}
	if e.BulkSize == 0 {
		e.BulkSize = defaultESBulkSize
	}
	if e.RateLimit == 0 {
		e.RateLimit = defaultESRateLimit
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
