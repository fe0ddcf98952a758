package bot

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"deskboard/internal/domain"
	"deskboard/internal/service"
	"deskboard/internal/widget"

	tele "gopkg.in/telebot.v3"
)

// StartTelegramBot answers dashboard queries over Telegram using the
// widgets' last snapshots, so chat commands never trigger upstream
// calls of their own.
func StartTelegramBot(registry *widget.Registry) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/weather", func(c tele.Context) error {
		report, ok := snapshot[*domain.WeatherReport](registry, domain.WidgetWeather)
		if !ok {
			return c.Send(widgetUnavailable(registry, domain.WidgetWeather))
		}
		msg := fmt.Sprintf(
			"%s\n%.1f°C (feels like %.1f°C)\n%s\nHumidity: %d%%  Wind: %.1f m/s",
			report.City, report.TempC, report.FeelsLikeC, report.Description,
			report.Humidity, report.WindSpeedMS,
		)
		return c.Send(msg)
	})

	b.Handle("/stocks", func(c tele.Context) error {
		quotes, ok := snapshot[[]domain.StockQuote](registry, domain.WidgetStocks)
		if !ok || len(quotes) == 0 {
			return c.Send(widgetUnavailable(registry, domain.WidgetStocks))
		}
		lines := make([]string, 0, len(quotes))
		for _, q := range quotes {
			lines = append(lines, fmt.Sprintf("%s  $%.2f  %+.2f (%.2f%%)",
				q.Symbol, q.Price, q.Change, q.ChangePercent))
		}
		return c.Send(strings.Join(lines, "\n"))
	})

	b.Handle("/news", func(c tele.Context) error {
		articles, ok := snapshot[[]domain.NewsArticle](registry, domain.WidgetNews)
		if !ok || len(articles) == 0 {
			return c.Send(widgetUnavailable(registry, domain.WidgetNews))
		}
		now := time.Now()
		lines := make([]string, 0, len(articles))
		for _, a := range articles {
			lines = append(lines, fmt.Sprintf("%s (%s)\n%s",
				a.Title, service.TimeAgo(now, a.PublishedAt), a.URL))
		}
		return c.Send(strings.Join(lines, "\n\n"))
	})

	b.Handle("/tasks", func(c tele.Context) error {
		tasks, ok := snapshot[[]domain.Task](registry, domain.WidgetTasks)
		if !ok {
			return c.Send(widgetUnavailable(registry, domain.WidgetTasks))
		}
		if len(tasks) == 0 {
			return c.Send("No tasks.")
		}
		now := time.Now()
		lines := make([]string, 0, len(tasks))
		for _, task := range tasks {
			line := fmt.Sprintf("%s [%s, %s]", task.Name, task.Status, service.PriorityLabel(task.Priority))
			if task.DueDate != nil {
				if due, err := time.Parse(time.RFC3339, *task.DueDate); err == nil {
					line += ", due " + service.DueDateBand(now, due)
				}
			}
			lines = append(lines, line)
		}
		return c.Send(strings.Join(lines, "\n"))
	})

	log.Println("Telegram bot started")
	go b.Start()
}

// snapshot pulls a widget's last data, typed.
func snapshot[T any](registry *widget.Registry, name string) (T, bool) {
	var zero T
	w, ok := registry.Get(name)
	if !ok {
		return zero, false
	}
	data, ok := w.Status().Data.(T)
	if !ok {
		return zero, false
	}
	return data, true
}

func widgetUnavailable(registry *widget.Registry, name string) string {
	if w, ok := registry.Get(name); ok {
		if errMsg := w.Status().Error; errMsg != "" {
			return fmt.Sprintf("%s widget error: %s", name, errMsg)
		}
	}
	return fmt.Sprintf("No %s data yet, try again shortly.", name)
}
