// Package config holds analyser-wide settings which the type algebra reads.
//
// A Config is built once, before analysis starts, and is read-only afterwards,
// so it can be shared between analysis workers.
package config

import (
	"bytes"
	"github.com/cottand/typealg/internal/log"
	"github.com/cottand/typealg/types"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

var logger = log.DefaultLogger.With("section", "types.config")

type Config struct {
	Types TypesConfig `yaml:"types"`
}

type TypesConfig struct {
	// RelaxUnionAccepts skips member-by-member acceptance checks for large unions,
	// see types.UnionAcceptsPolicy
	RelaxUnionAccepts bool `yaml:"relaxUnionAccepts"`
	UnionAcceptsLimit int  `yaml:"unionAcceptsLimit"`
}

func Default() Config {
	return Config{
		Types: TypesConfig{
			RelaxUnionAccepts: true,
			UnionAcceptsLimit: 1,
		},
	}
}

// Load reads a YAML config from r. Keys which are not present keep their Default value
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "could not read config")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "could not parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	logger.Debug("loaded config", "relaxUnionAccepts", cfg.Types.RelaxUnionAccepts, "unionAcceptsLimit", cfg.Types.UnionAcceptsLimit)
	return cfg, nil
}

func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not open config at %s", path)
	}
	defer func() {
		_ = f.Close()
	}()
	return Load(f)
}

func (c Config) Validate() error {
	if c.Types.UnionAcceptsLimit < 0 {
		return errors.Errorf("types.unionAcceptsLimit must not be negative, got %d", c.Types.UnionAcceptsLimit)
	}
	return nil
}

func (c Config) Policy() types.UnionAcceptsPolicy {
	return types.UnionAcceptsPolicy{
		Enabled: c.Types.RelaxUnionAccepts,
		Limit:   c.Types.UnionAcceptsLimit,
	}
}

// AcceptOpts are the options to pass to types.Type.Accepts during analysis
func (c Config) AcceptOpts() types.AcceptOpts {
	return types.AcceptOpts{Policy: c.Policy()}
}
