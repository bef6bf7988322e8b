package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App  AppConfig
	Data DataConfig
	AI   AIConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Environment string
	Debug       bool
	LogPath     string
}

type DataConfig struct {
	Dir string
}

type AIConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "artisanverse")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("DATA_DIR", "data/")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("AI_TIMEOUT_SECONDS", 60)

	// .env is optional; environment variables can carry everything
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Environment: viper.GetString("ENVIRONMENT"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
		},
		Data: DataConfig{
			Dir: viper.GetString("DATA_DIR"),
		},
		AI: AIConfig{
			APIKey:         viper.GetString("GEMINI_API_KEY"),
			Model:          viper.GetString("GEMINI_MODEL"),
			TimeoutSeconds: viper.GetInt("AI_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}

// IsProduction reports whether the app runs in a production-like environment.
// Secure cookies are only issued when this returns true.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
