package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"deskboard/internal/domain"
	"deskboard/internal/provider"

	"go.opentelemetry.io/otel/trace"
)

// forecastDayCap bounds the forecast widget to five calendar days.
const forecastDayCap = 5

// ErrCityNotFound is returned when the weather provider does not know
// the requested city.
var ErrCityNotFound = errors.New("City not found. Please try another city.")

type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (*provider.WeatherResponse, error)
	Forecast(ctx context.Context, city string) (*provider.ForecastResponse, error)
}

// WeatherService backs both weather widgets: current conditions and the
// 5-day forecast, for the configured default city or an ad-hoc lookup.
type WeatherService struct {
	tracer   trace.Tracer
	provider WeatherProvider
	apiKey   string
	city     string
}

func NewWeatherService(tracer trace.Tracer, p WeatherProvider, apiKey, city string) *WeatherService {
	return &WeatherService{
		tracer:   tracer,
		provider: p,
		apiKey:   apiKey,
		city:     city,
	}
}

// GetCurrent fetches and transforms current conditions. An empty city
// falls back to the configured default.
func (s *WeatherService) GetCurrent(ctx context.Context, city string) (*domain.WeatherReport, error) {
	ctx, span := s.tracer.Start(ctx, "weather-service.get-current")
	defer span.End()

	if s.apiKey == "" {
		return nil, domain.NewConfigError("Weather API key not found")
	}
	if city == "" {
		city = s.city
	}

	resp, err := s.provider.CurrentWeather(ctx, city)
	if err != nil {
		if ue, ok := domain.IsUpstream(err); ok && ue.Status == http.StatusNotFound {
			return nil, ErrCityNotFound
		}
		return nil, err
	}

	report := &domain.WeatherReport{
		City:        resp.Name,
		TempC:       resp.Main.Temp,
		FeelsLikeC:  resp.Main.FeelsLike,
		Humidity:    resp.Main.Humidity,
		PressureHPa: resp.Main.Pressure,
		WindSpeedMS: resp.Wind.Speed,
	}
	if len(resp.Weather) > 0 {
		report.Condition = resp.Weather[0].Main
		report.Description = resp.Weather[0].Description
		report.Icon = resp.Weather[0].Icon
		report.IconCategory = IconCategory(resp.Weather[0].Main)
	} else {
		report.IconCategory = IconCategory("")
	}
	return report, nil
}

// GetForecast fetches the 3-hour series for the default city and reduces
// it to one representative reading per day.
func (s *WeatherService) GetForecast(ctx context.Context) ([]domain.ForecastDay, error) {
	ctx, span := s.tracer.Start(ctx, "weather-service.get-forecast")
	defer span.End()

	if s.apiKey == "" {
		return nil, domain.NewConfigError("Weather API key not found")
	}

	resp, err := s.provider.Forecast(ctx, s.city)
	if err != nil {
		return nil, err
	}
	return SelectNoonForecasts(resp.List), nil
}

// SelectNoonForecasts picks, per calendar day in first-seen order, the
// first entry whose local hour falls in [11,14], capped at five days.
func SelectNoonForecasts(entries []provider.ForecastEntry) []domain.ForecastDay {
	days := make([]domain.ForecastDay, 0, forecastDayCap)
	seen := make(map[string]bool)

	for _, entry := range entries {
		if len(days) >= forecastDayCap {
			break
		}
		ts := time.Unix(entry.Dt, 0)
		hour := ts.Hour()
		if hour < 11 || hour > 14 {
			continue
		}
		dateKey := ts.Format("2006-01-02")
		if seen[dateKey] {
			continue
		}
		seen[dateKey] = true

		condition := ""
		if len(entry.Weather) > 0 {
			condition = entry.Weather[0].Main
		}
		days = append(days, domain.ForecastDay{
			Day:       ts.Format("Mon"),
			Date:      dateKey,
			TempC:     entry.Main.Temp,
			Condition: condition,
			Icon:      IconCategory(condition),
		})
	}
	return days
}

// IconCategory maps a condition string to one of the dashboard's icon
// buckets. First substring match wins; cloud is the default.
func IconCategory(condition string) string {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "clear") || strings.Contains(c, "sun"):
		return "sun"
	case strings.Contains(c, "rain"):
		return "rain"
	case strings.Contains(c, "drizzle"):
		return "drizzle"
	case strings.Contains(c, "snow"):
		return "snow"
	case strings.Contains(c, "cloud"):
		return "cloud"
	default:
		return "cloud"
	}
}
