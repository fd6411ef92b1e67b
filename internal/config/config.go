package config

import (
	"github.com/spf13/viper"
)

// Config holds all settings for the API server, loaded from app.env and
// overridable from the environment.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	// Routing provider. The key is not validated up front; a missing or bad
	// key surfaces as a provider error on the first route request.
	ORSKey     string `mapstructure:"ORS_KEY"`
	ORSBaseURL string `mapstructure:"ORS_BASE_URL"`

	NominatimBaseURL string `mapstructure:"NOMINATIM_BASE_URL"`
	OverpassBaseURL  string `mapstructure:"OVERPASS_BASE_URL"`

	// Offline cache and tile proxying.
	TileBaseURL    string `mapstructure:"TILE_BASE_URL"`
	TileHostSuffix string `mapstructure:"TILE_HOST_SUFFIX"`
	AppShellURL    string `mapstructure:"APP_SHELL_URL"`
	CacheVersion   string `mapstructure:"CACHE_VERSION"`
}

// LoadConfig reads configuration from app.env in the given directory,
// letting environment variables override file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("ORS_BASE_URL", "https://api.openrouteservice.org")
	viper.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("OVERPASS_BASE_URL", "https://overpass-api.de/api/interpreter")
	viper.SetDefault("TILE_BASE_URL", "https://tile.openstreetmap.org")
	viper.SetDefault("TILE_HOST_SUFFIX", "tile.openstreetmap.org")
	viper.SetDefault("APP_SHELL_URL", "http://localhost:3000/")
	viper.SetDefault("CACHE_VERSION", "wayfinder-cache-v1")

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
