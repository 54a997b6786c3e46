// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// config is the optional settings file for the convert command.
// Command line flags override it.
//
//	page = true
//	escape-text = false
//	charset = 1252
//	output = "out.html"
type config struct {
	Page       bool   `toml:"page"`
	EscapeText *bool  `toml:"escape-text"`
	Charset    int    `toml:"charset"`
	Output     string `toml:"output"`
}

func loadConfig(fs afero.Fs, path string) (*config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg config
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}
