// Copyright © fitvcs authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads and saves the repository-local .fit/config
// file, a TOML document decoded with BurntSushi/toml and trimmed to
// the one section this engine actually consults: the committer
// identity shown in CLI output.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// User is the committer identity recorded in [user]. It is purely
// informational: the commit payload carries no author field, so User
// is never hashed into object content.
type User struct {
	Name  string `toml:"name,omitempty"`
	Email string `toml:"email,omitempty"`
}

func (u User) Empty() bool {
	return u.Name == "" && u.Email == ""
}

// Config is the decoded shape of .fit/config.
type Config struct {
	User User `toml:"user"`
}

// Load reads and decodes path. A missing file returns an empty Config,
// not an error: a freshly init'd repository has no config yet.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := toml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save encodes cfg as TOML and writes it to path whole.
func (cfg *Config) Save(path string) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Set applies a single "section.key=value" assignment (e.g.
// "user.name=Ada Lovelace"), the form the `config` command accepts.
func (cfg *Config) Set(key, value string) error {
	switch key {
	case "user.name":
		cfg.User.Name = value
	case "user.email":
		cfg.User.Email = value
	default:
		return fmt.Errorf("config: unknown key %q", key)
	}
	return nil
}

// Get reads back a single "section.key", the inverse of Set.
func (cfg *Config) Get(key string) (string, bool) {
	switch key {
	case "user.name":
		return cfg.User.Name, cfg.User.Name != ""
	case "user.email":
		return cfg.User.Email, cfg.User.Email != ""
	default:
		return "", false
	}
}
