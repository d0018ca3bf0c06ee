package config

import (
	"fmt"

	"github.com/kbukum/errkit/logger"
	"github.com/kbukum/errkit/translate"
)

// ServiceConfig contains the configuration fields a service using errkit
// needs. Projects extend it by embedding it in their own config structs.
type ServiceConfig struct {
	Name        string           `yaml:"name" mapstructure:"name"`
	Environment string           `yaml:"environment" mapstructure:"environment"`
	Logging     logger.Config    `yaml:"logging" mapstructure:"logging"`
	Translation translate.Config `yaml:"translation" mapstructure:"translation"`
}

// ApplyDefaults applies default values to the configuration.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	// Propagate the service name into logging.
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Translation.ApplyDefaults()
}

// Validate validates the configuration.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of [development, staging, production] (got: %s)", c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Translation.Validate(); err != nil {
		return fmt.Errorf("config.translation: %w", err)
	}
	return nil
}
