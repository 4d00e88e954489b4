package config

import (
	"fmt"
	"time"
)

// Source describes where the dataset comes from. At most one of
// RemoteAddress and DSN is set; when both are empty DatasetDir (or the
// embedded sample) is read.
type Source struct {
	// RemoteAddress is the base URL of the remote dataset API.
	RemoteAddress string
	// RequestTimeout bounds requests to RemoteAddress.
	RequestTimeout time.Duration
	// DSN selects a SQL store.
	DSN string
	// DatasetDir is the JSON dataset directory. With a DSN it seeds the
	// database when the database is empty.
	DatasetDir string
}

// ClientConfig is the configuration view used by the terminal client.
type ClientConfig struct {
	Source Source
	Log    Log
}

// ServerConfig is the configuration view used by the HTTP server.
type ServerConfig struct {
	Source Source
	Server Server
	Log    Log
}

func (cfg *StructuredConfig) source() Source {
	return Source{
		RemoteAddress:  cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		DatasetDir:     cfg.Storage.Files.DatasetDir,
	}
}

// GetClientConfig builds and validates the client view of the merged
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Source: cfg.source(),
		Log:    cfg.Log,
	}

	return clientCfg, clientCfg.validate()
}

// GetServerConfig builds and validates the server view of the merged
// configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Source: cfg.source(),
		Server: cfg.Server,
		Log:    cfg.Log,
	}

	return serverCfg, serverCfg.validate()
}
