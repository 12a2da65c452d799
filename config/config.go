package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for listingmatch
type Config struct {
	Source    SourceConfig    `mapstructure:"source"`
	DB        DBConfig        `mapstructure:"db"`
	Extractor ExtractorConfig `mapstructure:"extractor"`
	Matcher   MatcherConfig   `mapstructure:"matcher"`
	Output    OutputConfig    `mapstructure:"output"`
	Log       LogConfig       `mapstructure:"log"`
}

// SourceConfig selects where listings, products and stop words come from
type SourceConfig struct {
	Type      string `mapstructure:"type"` // "file" or "rdb"
	Listings  string `mapstructure:"listings"`
	Products  string `mapstructure:"products"`
	StopWords string `mapstructure:"stop_words"`
}

type DBConfig struct {
	Driver   string `mapstructure:"driver"` // "mysql" or "sqlite"
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Addr     string `mapstructure:"addr"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	Path     string `mapstructure:"path"`
}

type ExtractorConfig struct {
	Mode         string            `mapstructure:"mode"` // "pattern" or "morphological"
	Stem         bool              `mapstructure:"stem"`
	CharMappings map[string]string `mapstructure:"char_mappings"`
}

type MatcherConfig struct {
	MatchKeywordlessProducts bool `mapstructure:"match_keywordless_products"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"` // "text", "json" or "pp"
	Path   string `mapstructure:"path"`   // empty means stdout
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Load reads configuration from the given file (optional), config.yaml in the
// usual places, and LISTINGMATCH_* environment variables.
func Load(configFile string) (*Config, error) {
	return LoadWith(viper.New(), configFile)
}

// LoadWith is Load on a caller-provided viper instance, so that command-line
// flags bound to v take precedence.
func LoadWith(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("LISTINGMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.type", "file")
	v.SetDefault("source.listings", "data/listings.txt")
	v.SetDefault("source.products", "data/products.txt")
	v.SetDefault("source.stop_words", "data/stop-words.txt")

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.addr", "127.0.0.1")
	v.SetDefault("db.port", "3306")
	v.SetDefault("db.name", "listingmatch")
	v.SetDefault("db.path", "listingmatch.db")

	v.SetDefault("extractor.mode", "pattern")
	v.SetDefault("extractor.stem", false)

	v.SetDefault("matcher.match_keywordless_products", false)

	v.SetDefault("output.format", "text")
	v.SetDefault("output.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

func validate(config *Config) error {
	switch config.Source.Type {
	case "file":
		if config.Source.Listings == "" || config.Source.Products == "" {
			return fmt.Errorf("listings and products paths are required for the file source")
		}
	case "rdb":
		if config.DB.Driver != "mysql" && config.DB.Driver != "sqlite" {
			return fmt.Errorf("db driver must be 'mysql' or 'sqlite', got: %s", config.DB.Driver)
		}
	default:
		return fmt.Errorf("source type must be 'file' or 'rdb', got: %s", config.Source.Type)
	}

	if config.Extractor.Mode != "pattern" && config.Extractor.Mode != "morphological" {
		return fmt.Errorf("extractor mode must be 'pattern' or 'morphological', got: %s", config.Extractor.Mode)
	}

	switch config.Output.Format {
	case "text", "json", "pp":
	default:
		return fmt.Errorf("output format must be 'text', 'json' or 'pp', got: %s", config.Output.Format)
	}

	if config.Log.Format != "console" && config.Log.Format != "json" {
		return fmt.Errorf("log format must be 'console' or 'json', got: %s", config.Log.Format)
	}
	return nil
}
