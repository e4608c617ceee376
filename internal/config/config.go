package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
)

//go:embed default.toml
var defaultConfigTOML []byte

var (
	// ErrConfigNotFound is returned when an explicit config path does not exist
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidCatalog wraps every catalog validation problem
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	UISettings UISettings     `toml:"ui"`
	Log        LogSettings    `toml:"log"`
	Catalog    CatalogConfig  `toml:"catalog"`
	Results    []ResultConfig `toml:"results"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	AutoRefresh        bool `toml:"auto_refresh"`
	UseDropdownFilters bool `toml:"use_dropdown_filters"`
	BlurGraceMillis    int  `toml:"blur_grace_ms"`
	MaxSuggestions     int  `toml:"max_suggestions"`
	MinQueryLength     int  `toml:"min_query_length"`
	MaxResults         int  `toml:"max_results"`
}

// BlurGrace returns the deferred-close interval used after the search box loses focus
func (s UISettings) BlurGrace() time.Duration {
	return time.Duration(s.BlurGraceMillis) * time.Millisecond
}

// LogSettings controls the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// CatalogConfig is the on-disk form of the suggestion catalog
type CatalogConfig struct {
	Topics          []string        `toml:"topics"`
	Countries       []CountryConfig `toml:"countries"`
	PopularSearches []string        `toml:"popular_searches"`
}

// CountryConfig is a catalog country entry
type CountryConfig struct {
	Name string `toml:"name"`
	Flag string `toml:"flag"`
}

// ResultConfig is a sample result card
type ResultConfig struct {
	Title     string   `toml:"title"`
	Subtitle  string   `toml:"subtitle"`
	Topics    []string `toml:"topics,omitempty"`
	Countries []string `toml:"countries,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "suggestbox", "config.toml")
}

// NewConfigService creates a config service reading and writing filePath.
// An empty filePath selects DefaultPath.
func NewConfigService(filePath string) ConfigService {
	if filePath == "" {
		filePath = DefaultPath()
	}
	return &configService{filePath: filePath}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(filePath string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(filePath).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service path, falling back to the
// built-in defaults when no file exists yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		cfg = DefaultConfig()
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Parse decodes a TOML document on top of the defaults and validates it.
// Scalar keys absent from data keep their default values; a document
// without a catalog or results section gets the built-in ones.
func Parse(data []byte) (*Config, error) {
	defaults := DefaultConfig()

	cfg := *defaults
	cfg.Catalog = CatalogConfig{}
	cfg.Results = nil
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if len(cfg.Catalog.Topics) == 0 && len(cfg.Catalog.Countries) == 0 && len(cfg.Catalog.PopularSearches) == 0 {
		cfg.Catalog = defaults.Catalog
	}
	if cfg.Results == nil {
		cfg.Results = defaults.Results
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	var cfg Config
	if err := toml.Unmarshal(defaultConfigTOML, &cfg); err != nil {
		// the embedded file is part of the build
		panic(fmt.Sprintf("config: embedded default.toml is invalid: %v", err))
	}
	return &cfg
}

// Validate checks limits and catalog data quality
func (c *Config) Validate() error {
	var errs []error

	if c.UISettings.MaxSuggestions <= 0 {
		errs = append(errs, fmt.Errorf("ui.max_suggestions must be positive, got %d", c.UISettings.MaxSuggestions))
	}
	if c.UISettings.MinQueryLength < 0 {
		errs = append(errs, fmt.Errorf("ui.min_query_length must not be negative, got %d", c.UISettings.MinQueryLength))
	}
	if c.UISettings.BlurGraceMillis < 0 {
		errs = append(errs, fmt.Errorf("ui.blur_grace_ms must not be negative, got %d", c.UISettings.BlurGraceMillis))
	}
	if c.UISettings.MaxResults <= 0 {
		errs = append(errs, fmt.Errorf("ui.max_results must be positive, got %d", c.UISettings.MaxResults))
	}

	seenTopics := make(map[string]bool)
	for _, topic := range c.Catalog.Topics {
		if topic == "" {
			errs = append(errs, fmt.Errorf("%w: empty topic label", ErrInvalidCatalog))
			continue
		}
		if seenTopics[topic] {
			errs = append(errs, fmt.Errorf("%w: duplicate topic %q", ErrInvalidCatalog, topic))
		}
		seenTopics[topic] = true
	}

	seenCountries := make(map[string]bool)
	for _, country := range c.Catalog.Countries {
		if country.Name == "" {
			errs = append(errs, fmt.Errorf("%w: empty country name", ErrInvalidCatalog))
			continue
		}
		if seenCountries[country.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate country %q", ErrInvalidCatalog, country.Name))
		}
		seenCountries[country.Name] = true
	}

	for _, search := range c.Catalog.PopularSearches {
		if search == "" {
			errs = append(errs, fmt.Errorf("%w: empty popular search", ErrInvalidCatalog))
		}
	}

	return errors.Join(errs...)
}

// DomainCatalog converts the catalog section into the immutable domain catalog
func (c *Config) DomainCatalog() domain.Catalog {
	catalog := domain.Catalog{
		Topics:          make([]domain.Topic, 0, len(c.Catalog.Topics)),
		Countries:       make([]domain.Country, 0, len(c.Catalog.Countries)),
		PopularSearches: append([]string(nil), c.Catalog.PopularSearches...),
	}
	for _, topic := range c.Catalog.Topics {
		catalog.Topics = append(catalog.Topics, domain.Topic(topic))
	}
	for _, country := range c.Catalog.Countries {
		catalog.Countries = append(catalog.Countries, domain.Country{Name: country.Name, Flag: country.Flag})
	}
	return catalog
}

// SampleResults converts the results section into domain results
func (c *Config) SampleResults() []domain.Result {
	results := make([]domain.Result, 0, len(c.Results))
	for _, r := range c.Results {
		result := domain.Result{
			Title:     r.Title,
			Subtitle:  r.Subtitle,
			Countries: append([]string(nil), r.Countries...),
		}
		for _, topic := range r.Topics {
			result.Topics = append(result.Topics, domain.Topic(topic))
		}
		results = append(results, result)
	}
	return results
}
