package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	ServerAddr  string `mapstructure:"SERVER_ADDR"`

	// Species data provider.
	PokeAPIBaseURL  string `mapstructure:"POKEAPI_BASE_URL"`
	LookupCacheSize int    `mapstructure:"LOOKUP_CACHE_SIZE"`
	LookupCacheTTL  int    `mapstructure:"LOOKUP_CACHE_TTL_MINUTES"`

	// Board geometry and encounter tuning.
	BoardTotalSpaces int `mapstructure:"BOARD_TOTAL_SPACES"`
	BoardGymLeaders  int `mapstructure:"BOARD_GYM_LEADERS"`
	BoardEliteFour   int `mapstructure:"BOARD_ELITE_FOUR"`
	WildMinLevel     int `mapstructure:"WILD_MIN_LEVEL"`
	WildMaxLevel     int `mapstructure:"WILD_MAX_LEVEL"`
	WildLevelSpan    int `mapstructure:"WILD_LEVEL_SPAN"`
}

// CacheTTL returns the lookup cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.LookupCacheTTL) * time.Minute
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("POKEAPI_BASE_URL", "https://pokeapi.co/api/v2")
	viper.SetDefault("LOOKUP_CACHE_SIZE", 512)
	viper.SetDefault("LOOKUP_CACHE_TTL_MINUTES", 60)
	viper.SetDefault("BOARD_TOTAL_SPACES", 40)
	viper.SetDefault("BOARD_GYM_LEADERS", 6)
	viper.SetDefault("BOARD_ELITE_FOUR", 1)
	viper.SetDefault("WILD_MIN_LEVEL", 5)
	viper.SetDefault("WILD_MAX_LEVEL", 50)
	viper.SetDefault("WILD_LEVEL_SPAN", 20)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
