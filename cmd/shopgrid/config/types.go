// Copyright (C) 2025 ShopGrid Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the CLI configuration from ~/.shopgrid/shopgrid.yaml,
// creating a commented default file on first run.
package config

// CurrentConfigVersion is written into new config files and checked on load.
const CurrentConfigVersion = "1"

// ShopGridConfig is the persisted CLI configuration.
type ShopGridConfig struct {
	Meta    MetaConfig    `yaml:"meta"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// MetaConfig identifies the config schema.
type MetaConfig struct {
	Version string `yaml:"version"`
}

// ServerConfig points the CLI at a storefront server.
type ServerConfig struct {
	// URL is the base URL of the storefront API.
	URL string `yaml:"url"`

	// TimeoutSeconds bounds each request. Zero means no timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// LoggingConfig controls CLI log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the config written on first run.
func DefaultConfig() ShopGridConfig {
	return ShopGridConfig{
		Meta:    MetaConfig{Version: CurrentConfigVersion},
		Server:  ServerConfig{URL: "http://localhost:4000", TimeoutSeconds: 30},
		Logging: LoggingConfig{Level: "info"},
	}
}
