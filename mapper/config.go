/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"google.golang.org/grpc/codes"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dargs/apis"
	"dirpx.dev/dargs/kind"
)

// ErrUnsupportedFormat is returned by LoadFile for an unknown extension.
var ErrUnsupportedFormat = errors.New("mapper: unsupported config format")

// Config is the file form of the mapper rules.
//
// YAML:
//
//	fallback: {http: 500, grpc: INTERNAL}
//	kinds:
//	  invalid_argument:
//	    default: {http: 422}
//	    reasons:
//	      - {prefix: numeric.range, http: 422, grpc: OUT_OF_RANGE}
//
// TOML:
//
//	[kinds.illegal_state.override]
//	http = 503
//	grpc = "UNAVAILABLE"
//
// gRPC codes are written with their canonical names (INVALID_ARGUMENT,
// FAILED_PRECONDITION, ...) or as numbers. Zero values mean "not set".
type Config struct {
	Fallback StatusConfig          `yaml:"fallback" toml:"fallback"`
	Kinds    map[string]KindConfig `yaml:"kinds" toml:"kinds"`
}

// KindConfig holds the rules for one kind. The map key in Config.Kinds is
// parsed with kind.Parse, so "InvalidArgument" and "invalid-argument" work.
type KindConfig struct {
	Default  StatusConfig `yaml:"default" toml:"default"`
	Override StatusConfig `yaml:"override" toml:"override"`
	Reasons  []ReasonRule `yaml:"reasons" toml:"reasons"`
}

// StatusConfig is an optional HTTP status and gRPC code pair.
type StatusConfig struct {
	HTTP int    `yaml:"http" toml:"http"`
	GRPC string `yaml:"grpc" toml:"grpc"`
}

// ReasonRule is one reason-prefix rule.
type ReasonRule struct {
	Prefix string `yaml:"prefix" toml:"prefix"`
	HTTP   int    `yaml:"http" toml:"http"`
	GRPC   string `yaml:"grpc" toml:"grpc"`
}

// LoadYAML decodes a Config from YAML. Unknown fields are rejected.
func LoadYAML(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("mapper: decode yaml: %w", err)
	}
	return &cfg, nil
}

// LoadTOML decodes a Config from TOML. Unknown keys are rejected.
func LoadTOML(r io.Reader) (*Config, error) {
	var cfg Config
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("mapper: decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("mapper: decode toml: unknown keys %s", strings.Join(keys, ", "))
	}
	return &cfg, nil
}

// LoadFile reads a Config from path, choosing the decoder by extension
// (.yaml, .yml or .toml).
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapper: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".toml":
		return LoadTOML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Options converts the config into mapper options. Kinds are applied in
// name order so errors are deterministic.
func (c *Config) Options() ([]Option, error) {
	if c == nil {
		return nil, nil
	}
	var opts []Option

	fb, err := c.Fallback.status()
	if err != nil {
		return nil, fmt.Errorf("mapper: fallback: %w", err)
	}
	opts = append(opts, WithFallback(fb))

	names := make([]string, 0, len(c.Kinds))
	for name := range c.Kinds {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		k, err := kind.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("mapper: kind %q: %w", name, err)
		}
		kc := c.Kinds[name]

		def, err := kc.Default.status()
		if err != nil {
			return nil, fmt.Errorf("mapper: kind %q default: %w", k, err)
		}
		if def.HTTP != 0 {
			opts = append(opts, WithHTTPDefault(k, def.HTTP))
		}
		if def.GRPC != codes.OK {
			opts = append(opts, WithGRPCDefault(k, def.GRPC))
		}

		ovr, err := kc.Override.status()
		if err != nil {
			return nil, fmt.Errorf("mapper: kind %q override: %w", k, err)
		}
		if ovr.HTTP != 0 {
			opts = append(opts, WithHTTPOverride(k, ovr.HTTP))
		}
		if ovr.GRPC != codes.OK {
			opts = append(opts, WithGRPCOverride(k, ovr.GRPC))
		}

		for _, rr := range kc.Reasons {
			st, err := StatusConfig{HTTP: rr.HTTP, GRPC: rr.GRPC}.status()
			if err != nil {
				return nil, fmt.Errorf("mapper: kind %q prefix %q: %w", k, rr.Prefix, err)
			}
			opts = append(opts, WithPrefix(k, rr.Prefix, st))
		}
	}
	return opts, nil
}

// Build is New(c.Options()..., extra...).
func (c *Config) Build(extra ...Option) (apis.Mapper, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}

func (s StatusConfig) status() (apis.Status, error) {
	c, err := ParseGRPCCode(s.GRPC)
	if err != nil {
		return apis.Status{}, err
	}
	return apis.Status{HTTP: s.HTTP, GRPC: c}, nil
}

// ParseGRPCCode parses a canonical gRPC code name such as
// "FAILED_PRECONDITION" (case-insensitive) or its number. The empty string
// yields codes.OK.
func ParseGRPCCode(s string) (codes.Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return codes.OK, nil
	}
	raw := s
	if _, err := strconv.ParseUint(s, 10, 32); err != nil {
		raw = strconv.Quote(strings.ToUpper(strings.ReplaceAll(s, "-", "_")))
	}
	var c codes.Code
	if err := c.UnmarshalJSON([]byte(raw)); err != nil {
		return codes.OK, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	return c, nil
}
