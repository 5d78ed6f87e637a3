package app

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/saradorri/predictor/internal/config"
	"github.com/spf13/viper"
)

func (a *application) setupViper(path string) error {
	// A local .env is optional
	_ = godotenv.Load()

	c, err := LoadConfig(viper.New(), path, config.GetEnvironment())
	if err != nil {
		return err
	}
	a.config = c

	fmt.Println("[x] Config loaded successfully")
	return nil
}

// LoadConfig reads config.<env>.yml from path, lets PREDICTOR_* variables
// override it and fills the defaults
func LoadConfig(v *viper.Viper, path, env string) (*config.Config, error) {
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	v.SetConfigType("yml")

	v.AddConfigPath(path)

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvPrefix("PREDICTOR")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	var c config.Config
	err = v.Unmarshal(&c)
	if err != nil {
		return nil, err
	}
	c.ApplyDefaults()
	return &c, nil
}
