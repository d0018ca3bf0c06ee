package translate

import (
	"fmt"
	"net/http"
)

// KindConfig declares a single kind in configuration: its status code and,
// optionally, its parent in the kind hierarchy. A zero status registers no
// handler; the kind then resolves through its parent chain.
type KindConfig struct {
	Status int    `yaml:"status" mapstructure:"status"`
	Parent string `yaml:"parent" mapstructure:"parent"`
}

// Config is the declarative form of a registry, loadable from yaml via the
// config package:
//
//	translation:
//	  default_status: 500
//	  kinds:
//	    not_found:
//	      status: 404
//	    order.expired:
//	      status: 410
//	    order.payment_declined:
//	      parent: conflict
type Config struct {
	DefaultStatus int                   `yaml:"default_status" mapstructure:"default_status"`
	DefaultPrefix string                `yaml:"default_prefix" mapstructure:"default_prefix"`
	HideDetails   bool                  `yaml:"hide_details" mapstructure:"hide_details"`
	Kinds         map[string]KindConfig `yaml:"kinds" mapstructure:"kinds"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.DefaultStatus == 0 {
		c.DefaultStatus = http.StatusInternalServerError
	}
	if c.DefaultPrefix == "" {
		c.DefaultPrefix = DefaultMessagePrefix
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.DefaultStatus != 0 && (c.DefaultStatus < 100 || c.DefaultStatus > 599) {
		return fmt.Errorf("translation.default_status must be a valid status code (got: %d)", c.DefaultStatus)
	}
	for kind, kc := range c.Kinds {
		if kind == "" {
			return fmt.Errorf("translation.kinds contains an empty kind")
		}
		if kc.Status != 0 && (kc.Status < 100 || kc.Status > 599) {
			return fmt.Errorf("translation.kinds.%s.status must be a valid status code (got: %d)", kind, kc.Status)
		}
		if kc.Status == 0 && kc.Parent == "" {
			return fmt.Errorf("translation.kinds.%s declares neither a status nor a parent", kind)
		}
	}
	return nil
}
