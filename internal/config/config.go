package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Port     string `mapstructure:"PORT"`
	Env      string `mapstructure:"ENV"`
	AppName  string `mapstructure:"APP_NAME"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

// Load arma la configuración del proceso desde un .env opcional y variables
// de entorno. Las variables de entorno pisan al archivo.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "elderly-health-monitor")
	v.SetDefault("LOG_LEVEL", "info")

	// Bind explícito para que Unmarshal tome las vars de entorno
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("APP_NAME")
	v.BindEnv("LOG_LEVEL")

	// El .env puede no existir; no es error
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
