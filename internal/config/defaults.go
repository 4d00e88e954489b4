package config

import "time"

const (
	defaultHTTPAddress           = "localhost:8080"
	defaultServerRequestTimeout  = 15 * time.Second
	defaultAdapterRequestTimeout = 10 * time.Second
	defaultLogLevel              = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultServerRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultAdapterRequestTimeout,
		},
		Log: Log{
			Level: defaultLogLevel,
		},
	}
}
