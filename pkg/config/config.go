package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/abdoElHodaky/tradsys-core/pkg/errors"
	"github.com/abdoElHodaky/tradsys-core/pkg/model"
)

// BookConfig configures a single OrderBook instance: which instrument and
// granularity it tracks, how many ladder levels Pprint renders by
// default, and whether mutation diagnostics are logged.
type BookConfig struct {
	InstrumentId    string `yaml:"instrument_id"`
	BookType        string `yaml:"book_type"`
	PprintLevels    int    `yaml:"pprint_levels"`
	Observability   ObservabilityConfig `yaml:"observability"`
}

// ObservabilityConfig selects how a book's Sink is constructed.
type ObservabilityConfig struct {
	// Enabled turns on the ZapSink; when false the book uses NoopSink.
	Enabled bool `yaml:"enabled"`
}

// DefaultBookConfig returns a BookConfig with conservative defaults: an
// L2_MBP book, 10 ladder levels, observability disabled.
func DefaultBookConfig() BookConfig {
	return BookConfig{
		BookType:     "L2_MBP",
		PprintLevels: 10,
		Observability: ObservabilityConfig{
			Enabled: false,
		},
	}
}

// LoadBookConfig reads and parses a BookConfig from a YAML file at path.
func LoadBookConfig(path string) (BookConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BookConfig{}, errors.Wrapf(err, errors.ErrInvalidBookOperation, "reading config file %s", path)
	}
	cfg := DefaultBookConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BookConfig{}, errors.Wrapf(err, errors.ErrInvalidBookOperation, "parsing config file %s", path)
	}
	return cfg, nil
}

// ParsedBookType resolves the configured BookType string to its
// model.BookType discriminant.
func (c BookConfig) ParsedBookType() (model.BookType, error) {
	return model.BookTypeFromString(c.BookType)
}

// ParsedInstrumentId resolves the configured InstrumentId string.
func (c BookConfig) ParsedInstrumentId() (model.InstrumentId, error) {
	return model.ParseInstrumentId(c.InstrumentId)
}
