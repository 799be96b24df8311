package utils

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App          AppConfig
	Database     DatabaseConfig
	Authorizer   AuthorizerConfig
	Availability AvailabilityConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Debug       bool
	LogPath     string
	FrontendURL string
	Location    *time.Location
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type AuthorizerConfig struct {
	URL         string
	ClientID    string
	RedirectURL string
}

type AvailabilityConfig struct {
	WindowStartHour int
	WindowEndHour   int
	StepMinutes     int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TIMEZONE", "UTC")
	viper.SetDefault("WINDOW_START_HOUR", 8)
	viper.SetDefault("WINDOW_END_HOUR", 20)
	viper.SetDefault("SLOT_STEP_MINUTES", 15)

	// .env is optional; real environment variables always win.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	required := []string{"AUTHORIZER_URL", "AUTHORIZER_CLIENT_ID", "AUTHORIZER_REDIRECT_URL"}
	var missing []string
	for _, key := range required {
		if strings.TrimSpace(viper.GetString(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	location, err := time.LoadLocation(viper.GetString("TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", viper.GetString("TIMEZONE"), err)
	}

	config := &Config{
		App: AppConfig{
			Name:        viper.GetString("APP_NAME"),
			Port:        viper.GetString("PORT"),
			Debug:       viper.GetBool("DEBUG"),
			LogPath:     viper.GetString("LOG_PATH"),
			FrontendURL: viper.GetString("FRONTEND_URL"),
			Location:    location,
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Authorizer: AuthorizerConfig{
			URL:         strings.TrimSpace(viper.GetString("AUTHORIZER_URL")),
			ClientID:    strings.TrimSpace(viper.GetString("AUTHORIZER_CLIENT_ID")),
			RedirectURL: strings.TrimSpace(viper.GetString("AUTHORIZER_REDIRECT_URL")),
		},
		Availability: AvailabilityConfig{
			WindowStartHour: viper.GetInt("WINDOW_START_HOUR"),
			WindowEndHour:   viper.GetInt("WINDOW_END_HOUR"),
			StepMinutes:     viper.GetInt("SLOT_STEP_MINUTES"),
		},
	}

	return config, nil
}
