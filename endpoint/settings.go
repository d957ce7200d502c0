package endpoint

import (
	"fmt"

	"github.com/kbukum/apiclient/config"
	"github.com/kbukum/apiclient/errors"
	"github.com/kbukum/apiclient/httpclient"
	"github.com/kbukum/apiclient/logger"
	"github.com/kbukum/apiclient/observability"
	"github.com/kbukum/apiclient/validation"
)

// Settings is the file and environment form of a client.
//
//	http:
//	  name: billing
//	  base_url: https://billing.internal
//	  timeout: 10s
//	extract_catch_data: true
//	logging:
//	  level: debug
type Settings struct {
	HTTP             httpclient.Config `mapstructure:"http"`
	ExtractData      *bool             `mapstructure:"extract_data"`
	ExtractCatchData *bool             `mapstructure:"extract_catch_data"`
	Metrics          bool              `mapstructure:"metrics"`
	Logging          logger.Config     `mapstructure:"logging"`
}

// ApplyDefaults fills in zero-value fields.
func (s *Settings) ApplyDefaults() {
	s.HTTP.ApplyDefaults()
	s.Logging.ApplyDefaults()
}

// Validate checks struct tags and the nested configurations.
func (s *Settings) Validate() error {
	if err := validation.Validate(s); err != nil {
		return err
	}
	if err := s.HTTP.Validate(); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	if err := s.Logging.Validate(); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	return nil
}

// LoadSettings reads, defaults and validates the settings named name.
func LoadSettings(name string, opts ...config.Option) (*Settings, error) {
	var s Settings
	if err := config.Load(name, &s, opts...); err != nil {
		return nil, err
	}
	if s.HTTP.Name == "" {
		s.HTTP.Name = name
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewFromSettings builds the transport, logger and client described by s.
// cfg supplies hooks and other defaults that have no file form.
func NewFromSettings(s *Settings, cfg ClientConfig, opts ...ClientOption) (*Client, error) {
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	adapter, err := httpclient.New(s.HTTP)
	if err != nil {
		return nil, fmt.Errorf("endpoint: create transport: %w", err)
	}

	name := s.HTTP.Name
	if name == "" {
		name = defaultClientName
	}
	base := []ClientOption{WithName(name), WithLogger(logger.New(&s.Logging, name))}
	if s.Metrics {
		m, err := observability.NewMetrics(observability.Meter(name))
		if err != nil {
			return nil, fmt.Errorf("endpoint: create metrics: %w", err)
		}
		base = append(base, WithMetrics(m))
	}

	if cfg.ExtractData == nil {
		cfg.ExtractData = s.ExtractData
	}
	if cfg.ExtractCatchData == nil {
		cfg.ExtractCatchData = s.ExtractCatchData
	}
	return NewClient(adapter, cfg, append(base, opts...)...), nil
}
