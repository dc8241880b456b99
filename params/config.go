// Package params holds the scint tool configuration and version.
package params

import (
	"encoding/json"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/zeebo/errs"

	"github.com/Lantah/go-lantah-base/log"
	"github.com/Lantah/go-lantah-base/numbers"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// output formats
const (
	OutputJSON = "json"
	OutputText = "text"
)

// MaxScale is the largest accepted number of fractional digits.
const MaxScale = 77

var (
	scintConfig = DefaultConfig()
	configMu    sync.RWMutex
)

// ScintConfig config items (decode from toml file)
type ScintConfig struct {
	// DefaultType is used by encode when no --type is given. Empty means
	// the type is inferred from the value.
	DefaultType string `toml:",omitempty" json:",omitempty"`
	Output      string
	Scale       uint32 `toml:",omitempty" json:",omitempty"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *ScintConfig {
	return &ScintConfig{
		Output: OutputJSON,
	}
}

// GetConfig returns the current configuration.
func GetConfig() *ScintConfig {
	configMu.RLock()
	defer configMu.RUnlock()

	return scintConfig
}

// SetConfig replaces the current configuration.
func SetConfig(config *ScintConfig) {
	configMu.Lock()
	defer configMu.Unlock()

	scintConfig = config
}

// LoadConfig decodes and checks a toml config file. Keys missing from the
// file keep their default.
func LoadConfig(configFile string) (config *ScintConfig, err error) {
	defer Error.WrapP(&err)

	config = DefaultConfig()
	if _, err = toml.DecodeFile(configFile, config); err != nil {
		return nil, err
	}

	if err = config.CheckConfig(); err != nil {
		return nil, err
	}

	bs, _ := json.Marshal(config)
	log.Debug("load config success", "file", configFile, "config", string(bs))

	return config, nil
}

// CheckConfig validates the configuration.
func (c *ScintConfig) CheckConfig() error {
	if c.DefaultType != "" {
		if _, err := numbers.ParseType(c.DefaultType); err != nil {
			return Error.New("bad DefaultType %q", c.DefaultType)
		}
	}

	switch c.Output {
	case OutputJSON, OutputText:
	default:
		return Error.New("bad Output %q (want %q or %q)", c.Output, OutputJSON, OutputText)
	}

	if c.Scale > MaxScale {
		return Error.New("bad Scale %d (at most %d)", c.Scale, MaxScale)
	}

	return nil
}
