package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	LLM      LLM
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// LLM holds the provider-selection flag and one credential per vendor. Only
// the selected vendor's key has to be present.
type LLM struct {
	Provider        string
	GeminiAPIKey    string
	AnthropicAPIKey string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LLM_PROVIDER", "gemini")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.LLM.Provider = viper.GetString("LLM_PROVIDER")
	config.LLM.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	config.LLM.AnthropicAPIKey = viper.GetString("ANTHROPIC_API_KEY")

	log.Info().
		Str("server_port", config.Server.Port).
		Str("database_host", config.Database.Host).
		Str("llm_provider", config.LLM.Provider).
		Msg("Config loaded")
	return &config, nil
}
