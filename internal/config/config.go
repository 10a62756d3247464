package config

import "github.com/spf13/viper"

// Config holds every runtime setting for the service.
type Config struct {
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`
	DBSource       string `mapstructure:"DB_SOURCE"`
	OverpassURL    string `mapstructure:"OVERPASS_URL"`
	SimplifyStride int    `mapstructure:"SIMPLIFY_STRIDE"`
	BatchWorkers   int    `mapstructure:"BATCH_WORKERS"`
}

// LoadConfig reads config.yaml from the given directory, with environment
// variables taking precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	// Registers the key so AutomaticEnv resolves DB_SOURCE even when the
	// config file omits it.
	viper.SetDefault("DB_SOURCE", "")
	viper.SetDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	viper.SetDefault("SIMPLIFY_STRIDE", 10)
	viper.SetDefault("BATCH_WORKERS", 8)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		return
	}
	err = viper.Unmarshal(&config)
	return
}
