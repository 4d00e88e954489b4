// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig]. Only the log level is
// checked here; source and listener rules depend on the binary and live on
// the client and server views.
func (cfg *StructuredConfig) validate() error {
	return cfg.Log.validate()
}

func (l Log) validate() error {
	if l.Level == "" {
		return nil
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(l.Level)); err != nil {
		return ErrInvalidLogConfigs
	}
	return nil
}

func (s Source) validate() error {
	if s.RemoteAddress != "" && s.DSN != "" {
		return ErrInvalidStorageConfigs
	}

	if s.RemoteAddress != "" && s.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Source.validate(); err != nil {
		return err
	}

	return cfg.Log.validate()
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Source.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return cfg.Log.validate()
}
