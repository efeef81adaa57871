// This file is part of go-mc/server project.
// Copyright (C) 2023.  Tnze
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the flowybounds configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

// Scalars lists the coordinate types a scene can be evaluated in.
var Scalars = []string{"float32", "float64", "int32", "int64"}

var ErrUnknownScalar = errors.New("unknown scalar type")

// Config holds the settings read from config.toml. Command line flags
// override them.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `toml:"log-level"`

	// Scalar is the coordinate type scenes are built in.
	Scalar string `toml:"scalar"`

	// ReportLimiter bounds how many per-pair debug lines the evaluator
	// writes.
	ReportLimiter Limiter `toml:"report-limiter"`

	// MetricsFile, when set, receives a text dump of the evaluation
	// metrics after every command.
	MetricsFile string `toml:"metrics-file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "info",
		Scalar:   "float64",
		ReportLimiter: Limiter{
			Every: duration{100 * time.Millisecond},
			N:     20,
		},
	}
}

// Limiter is a token bucket: at most N events, refilled once per Every.
type Limiter struct {
	Every duration `toml:"every"`
	N     int      `toml:"n"`
}

// Limiter builds the rate.Limiter described by l.
func (l *Limiter) Limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Every(l.Every.Duration), l.N)
}

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) (err error) {
	d.Duration, err = time.ParseDuration(string(text))
	return
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Load reads the file at path on top of Default.
func Load(path string) (Config, error) {
	c := Default()
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return c.checked(meta)
}

// Decode reads a configuration from r on top of Default.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	meta, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c.checked(meta)
}

func (c Config) checked(meta toml.MetaData) (Config, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var err ErrUnknownKeys
		for _, key := range undecoded {
			err = append(err, key.String())
		}
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values that cannot be checked by decoding alone.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if !slices.Contains(Scalars, c.Scalar) {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownScalar, c.Scalar, strings.Join(Scalars, ", "))
	}
	if c.ReportLimiter.N < 0 {
		return fmt.Errorf("report-limiter: negative burst %d", c.ReportLimiter.N)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return l, fmt.Errorf("log-level: %w", err)
	}
	return l, nil
}

// ErrUnknownKeys lists config keys nothing reads.
type ErrUnknownKeys []string

func (e ErrUnknownKeys) Error() string {
	return "unknown config keys: [" + strings.Join(e, ", ") + "]"
}
