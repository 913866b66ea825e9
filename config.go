package ecscore

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// CodecConfig is the TOML-friendly description of a Codec's bit split.
type CodecConfig struct {
	IndexBits   int `toml:"index_bits"`
	VersionBits int `toml:"version_bits"`
}

// Config bundles the three boundary configs spec §6 names, resolved with
// live Codec values.
type Config struct {
	EntityStore EntityStoreConfig
	Component   ComponentConfig
	SparseSet   SparseSetConfig
}

// fileConfig is the on-disk TOML shape; its Codec fields are plain ints
// rather than *Codec, the way rdtc8822's internal/config.Config separates
// the serialized shape from the runtime one.
type fileConfig struct {
	EntityStore struct {
		Codec     CodecConfig `toml:"codec"`
		Capacity  int         `toml:"capacity"`
		Resizable bool        `toml:"resizable"`
		Typed     bool        `toml:"typed"`
	} `toml:"entity_store"`
	Component struct {
		Typed    bool        `toml:"typed"`
		PoolSize int         `toml:"pool_size"`
		PageSize int         `toml:"page_size"`
		Replace  bool        `toml:"replace"`
		Resize   bool        `toml:"resize"`
		Codec    CodecConfig `toml:"codec"`
	} `toml:"component"`
	SparseSet struct {
		PageSize int         `toml:"page_size"`
		PoolSize int         `toml:"pool_size"`
		Typed    bool        `toml:"typed"`
		Codec    CodecConfig `toml:"codec"`
	} `toml:"sparse_set"`
}

func defaultFileConfig() fileConfig {
	var fc fileConfig
	fc.EntityStore.Codec = CodecConfig{IndexBits: 20, VersionBits: 12}
	fc.EntityStore.Capacity = 1000
	fc.EntityStore.Resizable = true
	fc.EntityStore.Typed = true

	fc.Component.Typed = true
	fc.Component.PoolSize = 16
	fc.Component.PageSize = 128
	fc.Component.Replace = true
	fc.Component.Resize = true
	fc.Component.Codec = CodecConfig{IndexBits: 20, VersionBits: 12}

	fc.SparseSet.PageSize = 128
	fc.SparseSet.PoolSize = 16
	fc.SparseSet.Typed = true
	fc.SparseSet.Codec = CodecConfig{IndexBits: 20, VersionBits: 12}
	return fc
}

func (fc fileConfig) resolve() (*Config, error) {
	esCodec, err := NewCodec(fc.EntityStore.Codec.IndexBits, fc.EntityStore.Codec.VersionBits)
	if err != nil {
		return nil, fmt.Errorf("entity_store.codec: %w", err)
	}
	compCodec, err := NewCodec(fc.Component.Codec.IndexBits, fc.Component.Codec.VersionBits)
	if err != nil {
		return nil, fmt.Errorf("component.codec: %w", err)
	}
	ssCodec, err := NewCodec(fc.SparseSet.Codec.IndexBits, fc.SparseSet.Codec.VersionBits)
	if err != nil {
		return nil, fmt.Errorf("sparse_set.codec: %w", err)
	}
	return &Config{
		EntityStore: EntityStoreConfig{
			Codec:     esCodec,
			Capacity:  fc.EntityStore.Capacity,
			Resizable: fc.EntityStore.Resizable,
			Typed:     fc.EntityStore.Typed,
		},
		Component: ComponentConfig{
			Typed:    fc.Component.Typed,
			PoolSize: fc.Component.PoolSize,
			PageSize: fc.Component.PageSize,
			Replace:  fc.Component.Replace,
			Resize:   fc.Component.Resize,
			Codec:    compCodec,
		},
		SparseSet: SparseSetConfig{
			PageSize: fc.SparseSet.PageSize,
			PoolSize: fc.SparseSet.PoolSize,
			Typed:    fc.SparseSet.Typed,
			Codec:    ssCodec,
		},
	}, nil
}

// DefaultConfig returns spec §6's documented defaults as a resolved Config.
func DefaultConfig() *Config {
	cfg, err := defaultFileConfig().resolve()
	if err != nil {
		panic("ecscore: built-in default config is invalid: " + err.Error())
	}
	return cfg
}

// LoadConfig reads a TOML document at path into a Config, overlaying it on
// top of DefaultConfig's values the way rdtc8822's internal/config.Load
// overlays a parsed file on top of its own defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	fc := defaultFileConfig()
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc.resolve()
}
