package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"deskboard/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// OpenWeatherProvider fetches current conditions and the 5-day/3-hour
// forecast from the OpenWeatherMap API, metric units.
type OpenWeatherProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewOpenWeatherProvider(tracer trace.Tracer, apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: openWeatherBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

type WeatherResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

type ForecastResponse struct {
	List []ForecastEntry `json:"list"`
}

// CurrentWeather fetches current conditions for a city.
func (p *OpenWeatherProvider) CurrentWeather(ctx context.Context, city string) (*WeatherResponse, error) {
	_, span := p.tracer.Start(ctx, "openweather.current")
	defer span.End()

	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		p.baseURL, url.QueryEscape(city), p.apiKey)

	body, err := p.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp WeatherResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse weather response: %w", err)
	}
	return &resp, nil
}

// Forecast fetches the multi-point 5-day series for a city.
func (p *OpenWeatherProvider) Forecast(ctx context.Context, city string) (*ForecastResponse, error) {
	_, span := p.tracer.Start(ctx, "openweather.forecast")
	defer span.End()

	endpoint := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric",
		p.baseURL, url.QueryEscape(city), p.apiKey)

	body, err := p.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp ForecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse forecast response: %w", err)
	}
	return &resp, nil
}

func (p *OpenWeatherProvider) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &domain.UpstreamError{Service: "openweather", Status: resp.StatusCode, Body: string(body)}
	}

	return io.ReadAll(resp.Body)
}
