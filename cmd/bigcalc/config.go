package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig is the layout of the TOML config file:
//
//	karatsuba_threshold = 32
//	format = "json"
//	json_numbers = true
type fileConfig struct {
	KaratsubaThreshold *int   `toml:"karatsuba_threshold"`
	Format             string `toml:"format"`
	JSONNumbers        *bool  `toml:"json_numbers"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fileConfig{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
