package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deskboard/internal/bot"
	"deskboard/internal/cache"
	"deskboard/internal/config"
	"deskboard/internal/domain"
	"deskboard/internal/handler"
	"deskboard/internal/job"
	"deskboard/internal/provider"
	"deskboard/internal/service"
	"deskboard/internal/widget"
	"deskboard/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "deskboard/docs"
)

// widgetStagger spreads widget start times so the first fetch cycles do
// not hit every upstream at once.
const widgetStagger = 2 * time.Second

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initRedisFunc  = cache.InitRedis
	initTracerFunc = tracing.InitTracer

	newWeatherProviderFunc = func(tracer trace.Tracer, apiKey string) service.WeatherProvider {
		return provider.NewOpenWeatherProvider(tracer, apiKey)
	}
	newQuoteProviderFunc = func(tracer trace.Tracer, apiKey string) service.QuoteProvider {
		return provider.NewAlphaVantageProvider(tracer, apiKey)
	}
	newHeadlineProviderFunc = func(tracer trace.Tracer, apiKey string) service.HeadlineProvider {
		return provider.NewNewsProvider(tracer, apiKey)
	}
	newClickUpProviderFunc = func(tracer trace.Tracer, token string) service.ClickUpAPI {
		return provider.NewClickUpProvider(tracer, token)
	}

	newStoreFunc           = func() cache.Store { return cache.NewRedisStore(cache.Client) }
	startPollerFunc        = func(p *job.DashboardPoller, ctx context.Context) { go p.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Deskboard API
// @version         1.0
// @description     Personal dashboard: weather, forecast, stocks, news, tasks, and calendar widgets.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	weatherService := service.NewWeatherService(tracer,
		newWeatherProviderFunc(tracer, cfg.OpenWeatherAPIKey), cfg.OpenWeatherAPIKey, cfg.WeatherCity)
	stockService := service.NewStockService(tracer,
		newQuoteProviderFunc(tracer, cfg.AlphaVantageAPIKey), newStoreFunc(), cfg.AlphaVantageAPIKey)
	newsService := service.NewNewsService(tracer,
		newHeadlineProviderFunc(tracer, cfg.NewsAPIKey), cfg.NewsAPIKey, cfg.NewsCountry, cfg.NewsPageSize)
	taskService := service.NewTaskService(tracer,
		newClickUpProviderFunc(tracer, cfg.ClickUpAPIToken), cfg.ClickUpAPIToken)

	interval := time.Duration(cfg.WidgetPollSecs) * time.Second
	registry := widget.NewRegistry()
	registry.Add(widget.NewController(domain.WidgetWeather, interval,
		func(ctx context.Context, force bool) (*domain.WeatherReport, error) {
			return weatherService.GetCurrent(ctx, "")
		}))
	registry.Add(widget.NewController(domain.WidgetForecast, interval,
		func(ctx context.Context, force bool) ([]domain.ForecastDay, error) {
			return weatherService.GetForecast(ctx)
		}))
	registry.Add(widget.NewController(domain.WidgetStocks, interval,
		func(ctx context.Context, force bool) ([]domain.StockQuote, error) {
			return stockService.GetQuotes(ctx, force)
		}))
	registry.Add(widget.NewController(domain.WidgetNews, interval,
		func(ctx context.Context, force bool) ([]domain.NewsArticle, error) {
			return newsService.GetHeadlines(ctx)
		}))
	registry.Add(widget.NewController(domain.WidgetTasks, interval,
		func(ctx context.Context, force bool) ([]domain.Task, error) {
			return taskService.GetTasks(ctx)
		}))

	poller := job.NewDashboardPoller(tracer, registry, widgetStagger)
	startPollerFunc(poller, ctx)

	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(registry)

	h := handler.New(tracer, registry, weatherService, taskService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("deskboard"))

	h.RegisterRoutes(r, handler.APIKeyAuth(cfg.DashboardAPIKey))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
