// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/logbuffer/src/logbuffer"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// FileEnv names the configuration file when no explicit path is given.
const FileEnv = "LOGBUFFER_CONFIG_FILE"

var (
	// ErrInvalidLevel reports a level name that is not accepted.
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrInvalidConfig reports a configuration file that fails validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// schema constrains JSON configuration files.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "path":   { "type": "string" },
    "level":  { "type": "string", "pattern": "^\\s*(?i:default|debug|info|error)?\\s*$" },
    "strict": { "type": "boolean" }
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Config is the logbuffer configuration.
type Config struct {
	// Path is the log file. Empty selects the platform default.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// Level is the filter used when LOG_LEVEL is unset: default, debug, info or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// Strict turns an unrecognized LOG_LEVEL into an error at flush time.
	Strict bool `json:"strict,omitempty" yaml:"strict,omitempty"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Anything other than .yaml or .yml is read as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// Load reads the configuration file at configPath, or the file named by
// LOGBUFFER_CONFIG_FILE when configPath is empty. With neither, it returns
// the zero Config.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv(FileEnv)
	}
	if configPath == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, detectConfigFormat(configPath) == configFormatYAML)
}

// Parse decodes configuration data, as YAML when isYAML is set and as
// schema-validated JSON otherwise.
func Parse(data []byte, isYAML bool) (*Config, error) {
	cfg := &Config{}

	if isYAML {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF; that is the zero Config.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	} else {
		if err := validateJSON(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateJSON(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON config file: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Validate checks Level.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Level) == "" {
		return nil
	}
	if _, err := logbuffer.ParseSeverity(c.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}
	return nil
}

// Resolver returns the flush-time filter resolver for c. lookup reads the
// environment (os.LookupEnv when nil) and is called once per resolution.
func (c *Config) Resolver(lookup logbuffer.LookupFunc) logbuffer.FilterResolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	level, strict := c.Level, c.Strict

	return func() (logbuffer.Severity, error) {
		if v, ok := lookup(logbuffer.LevelEnv); ok && v != "" {
			sev := logbuffer.ParseEnvFilter(v)
			if strict && sev == logbuffer.Default {
				return logbuffer.Default, fmt.Errorf("%w: %s=%q", ErrInvalidLevel, logbuffer.LevelEnv, v)
			}
			return sev, nil
		}
		if strings.TrimSpace(level) == "" {
			return logbuffer.Default, nil
		}
		sev, err := logbuffer.ParseSeverity(level)
		if err != nil {
			return logbuffer.Default, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
		}
		return sev, nil
	}
}

// NewBuffer builds a buffer targeting c.Path whose filter comes from c.Resolver(lookup).
func (c *Config) NewBuffer(lookup logbuffer.LookupFunc) *logbuffer.Buffer {
	buf := logbuffer.New(c.Path)
	buf.SetFilterResolver(c.Resolver(lookup))
	return buf
}
