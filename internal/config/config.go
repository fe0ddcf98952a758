package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	OpenWeatherAPIKey  string
	NewsAPIKey         string
	AlphaVantageAPIKey string
	ClickUpAPIToken    string

	RedisURL        string
	WeatherCity     string
	NewsCountry     string
	NewsPageSize    int
	WidgetPollSecs  int
	HTTPPort        int
	DashboardAPIKey string

	TelegramBotToken string
}

func Load() *Config {
	cfg := &Config{
		OpenWeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		NewsAPIKey:         os.Getenv("NEWS_API_KEY"),
		AlphaVantageAPIKey: os.Getenv("ALPHAVANTAGE_API_KEY"),
		ClickUpAPIToken:    os.Getenv("CLICKUP_API_TOKEN"),
		RedisURL:           os.Getenv("REDIS_URL"),
		DashboardAPIKey:    os.Getenv("DASHBOARD_API_KEY"),
		TelegramBotToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.OpenWeatherAPIKey == "" {
		log.Println("Warning: OPENWEATHER_API_KEY not set, weather widgets will report a config error")
	}
	if cfg.NewsAPIKey == "" {
		log.Println("Warning: NEWS_API_KEY not set, news widget will report a config error")
	}
	if cfg.AlphaVantageAPIKey == "" {
		log.Println("Warning: ALPHAVANTAGE_API_KEY not set, stocks widget will report a config error")
	}
	if cfg.ClickUpAPIToken == "" {
		log.Println("Warning: CLICKUP_API_TOKEN not set, tasks widget will report a config error")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	cfg.WeatherCity = strings.TrimSpace(os.Getenv("WEATHER_CITY"))
	if cfg.WeatherCity == "" {
		cfg.WeatherCity = "Bethesda"
	}

	cfg.NewsCountry = strings.ToLower(strings.TrimSpace(os.Getenv("NEWS_COUNTRY")))
	if cfg.NewsCountry == "" {
		cfg.NewsCountry = "us"
	}

	cfg.NewsPageSize = 5
	if v := strings.TrimSpace(os.Getenv("NEWS_PAGE_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			cfg.NewsPageSize = n
		}
	}

	cfg.WidgetPollSecs = 300
	if v := strings.TrimSpace(os.Getenv("WIDGET_POLL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WidgetPollSecs = n
		}
	}

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 65536 {
			cfg.HTTPPort = n
		}
	}

	return cfg
}
