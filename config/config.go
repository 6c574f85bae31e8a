// Package config is an optional YAML helper for rpc client options. The path
// is always explicit and the credential never appears here: connection
// initialization takes both values programmatically.
package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"cnft/go-client/rpc"
)

var ErrNoPath = errors.New("config path is required")

type File struct {
	RPC RPCConfig `yaml:"rpc"`
}

type RPCConfig struct {
	Endpoint       string  `yaml:"endpoint"`
	TimeoutSeconds int     `yaml:"timeoutSeconds"`
	RPS            float64 `yaml:"rps"`
	Burst          int     `yaml:"burst"`
}

// Load reads the file at path and merges it over zero-value defaults; the
// rpc client applies its own fallbacks for anything left unset.
func Load(path string) (rpc.Config, error) {
	if path == "" {
		return rpc.Config{}, ErrNoPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rpc.Config{}, err
	}
	var parsed File
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return rpc.Config{}, err
	}
	var cfg rpc.Config
	Merge(&cfg, parsed.RPC)
	return cfg, nil
}

func Merge(dst *rpc.Config, src RPCConfig) {
	if src.Endpoint != "" {
		dst.Endpoint = src.Endpoint
	}
	if src.TimeoutSeconds != 0 {
		dst.Timeout = time.Duration(src.TimeoutSeconds) * time.Second
	}
	if src.RPS != 0 {
		dst.RPS = src.RPS
	}
	if src.Burst != 0 {
		dst.Burst = src.Burst
	}
}
