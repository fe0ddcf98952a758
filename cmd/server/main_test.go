package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"deskboard/internal/cache"
	"deskboard/internal/config"
	"deskboard/internal/domain"
	"deskboard/internal/job"
	"deskboard/internal/provider"
	"deskboard/internal/service"
	"deskboard/internal/widget"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	restore := stubServerDeps()
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
}

func stubServerDeps() func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitRedis := initRedisFunc
	origInitTracer := initTracerFunc
	origWeather := newWeatherProviderFunc
	origQuote := newQuoteProviderFunc
	origHeadline := newHeadlineProviderFunc
	origClickUp := newClickUpProviderFunc
	origStore := newStoreFunc
	origStartPoller := startPollerFunc
	origStartTelegram := startTelegramBotFunc
	origNewRouter := newRouterFunc
	origSetupSignal := setupSignalNotify
	origWait := waitForSignalFunc
	origStartHTTP := startHTTPServerFunc
	origShutdownHTTP := shutdownHTTPServerFunc

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{WidgetPollSecs: 300, HTTPPort: 8080, NewsCountry: "us", NewsPageSize: 5}
	}
	initRedisFunc = func(context.Context) {}
	initTracerFunc = func(ctx context.Context) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	newWeatherProviderFunc = func(trace.Tracer, string) service.WeatherProvider { return stubWeatherProvider{} }
	newQuoteProviderFunc = func(trace.Tracer, string) service.QuoteProvider { return stubQuoteProvider{} }
	newHeadlineProviderFunc = func(trace.Tracer, string) service.HeadlineProvider { return stubHeadlineProvider{} }
	newClickUpProviderFunc = func(trace.Tracer, string) service.ClickUpAPI { return stubClickUpAPI{} }
	newStoreFunc = func() cache.Store { return stubStore{} }
	startPollerFunc = func(*job.DashboardPoller, context.Context) {}
	startTelegramBotFunc = func(*widget.Registry) {}
	newRouterFunc = func(...gin.OptionFunc) *gin.Engine { return gin.New() }
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	waitForSignalFunc = func(<-chan os.Signal) {}
	startHTTPServerFunc = func(*http.Server) error { return http.ErrServerClosed }
	shutdownHTTPServerFunc = func(*http.Server, context.Context) error { return nil }

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initRedisFunc = origInitRedis
		initTracerFunc = origInitTracer
		newWeatherProviderFunc = origWeather
		newQuoteProviderFunc = origQuote
		newHeadlineProviderFunc = origHeadline
		newClickUpProviderFunc = origClickUp
		newStoreFunc = origStore
		startPollerFunc = origStartPoller
		startTelegramBotFunc = origStartTelegram
		newRouterFunc = origNewRouter
		setupSignalNotify = origSetupSignal
		waitForSignalFunc = origWait
		startHTTPServerFunc = origStartHTTP
		shutdownHTTPServerFunc = origShutdownHTTP
	}
}

type stubWeatherProvider struct{}

func (stubWeatherProvider) CurrentWeather(ctx context.Context, city string) (*provider.WeatherResponse, error) {
	return &provider.WeatherResponse{}, nil
}

func (stubWeatherProvider) Forecast(ctx context.Context, city string) (*provider.ForecastResponse, error) {
	return &provider.ForecastResponse{}, nil
}

type stubQuoteProvider struct{}

func (stubQuoteProvider) FetchQuote(ctx context.Context, symbol string) (*domain.StockQuote, error) {
	return &domain.StockQuote{Symbol: symbol}, nil
}

type stubHeadlineProvider struct{}

func (stubHeadlineProvider) TopHeadlines(ctx context.Context, country string, pageSize int) (*provider.HeadlinesResponse, error) {
	return &provider.HeadlinesResponse{}, nil
}

type stubClickUpAPI struct{}

func (stubClickUpAPI) AuthorizedUser(ctx context.Context) (*provider.ClickUpUserResponse, error) {
	return &provider.ClickUpUserResponse{}, nil
}

func (stubClickUpAPI) TeamTasks(ctx context.Context, teamID string) (*provider.ClickUpTasksResponse, error) {
	return &provider.ClickUpTasksResponse{}, nil
}

type stubStore struct{}

func (stubStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, cache.ErrMiss }
func (stubStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (stubStore) Delete(ctx context.Context, keys ...string) error { return nil }
