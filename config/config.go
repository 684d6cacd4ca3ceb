// Copyright 2026 The oppenfmt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config decodes oppenfmt.Options from YAML, for embedding
// programs that keep printer settings alongside their other
// configuration rather than wiring flags by hand. This is a decoding
// helper, not a CLI.
package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oppenfmt/oppenfmt"
)

// File is the shape of a printer config document:
//
//	margin: 100
//	indent_unit: 2
//	log_level: debug
type File struct {
	Margin     int    `yaml:"margin"`
	IndentUnit int    `yaml:"indent_unit"`
	LogLevel   string `yaml:"log_level"`
}

// Parse decodes a YAML document into Options. IndentUnit, if set, is
// the per-nesting-level column count callers can hand to width.Indent
// when computing Group/Space offsets.
func Parse(data []byte) (oppenfmt.Options, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return oppenfmt.Options{}, fmt.Errorf("oppenfmt/config: %w", err)
	}
	opts := oppenfmt.Options{Margin: f.Margin, IndentUnit: f.IndentUnit}
	if f.LogLevel != "" {
		level, err := zapcore.ParseLevel(f.LogLevel)
		if err != nil {
			return oppenfmt.Options{}, fmt.Errorf("oppenfmt/config: log_level: %w", err)
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err := cfg.Build()
		if err != nil {
			return oppenfmt.Options{}, fmt.Errorf("oppenfmt/config: %w", err)
		}
		opts.Logger = logger.Sugar()
	}
	return opts, nil
}
