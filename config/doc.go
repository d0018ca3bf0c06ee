// Package config loads errkit configuration from config.yml and .env files
// with environment variable overrides, using viper and godotenv.
//
// Host services embed ServiceConfig in their own config struct and call
// LoadConfig at startup:
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	}
//
//	var cfg AppConfig
//	if err := config.LoadConfig("my-service", &cfg); err != nil { ... }
//	reg := translate.NewBuilder().RegisterDefaults().FromConfig(cfg.Translation).MustBuild()
package config
