package domain

import "time"

// StockSymbols is the fixed ordered watchlist. Quote order in the
// dashboard payload follows this order.
var StockSymbols = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "NVDA", "TSLA"}

// Widget names used in routes, the registry, and the dashboard payload.
const (
	WidgetWeather  = "weather"
	WidgetForecast = "forecast"
	WidgetStocks   = "stocks"
	WidgetNews     = "news"
	WidgetTasks    = "tasks"
	WidgetCalendar = "calendar"
)

type WeatherReport struct {
	City         string  `json:"city"`
	TempC        float64 `json:"temp_c"`
	FeelsLikeC   float64 `json:"feels_like_c"`
	Humidity     int     `json:"humidity"`
	PressureHPa  int     `json:"pressure_hpa"`
	WindSpeedMS  float64 `json:"wind_speed_ms"`
	Condition    string  `json:"condition"`
	Description  string  `json:"description"`
	Icon         string  `json:"icon"`
	IconCategory string  `json:"icon_category"`
}

type ForecastDay struct {
	Day       string  `json:"day"`
	Date      string  `json:"date"`
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
}

type StockQuote struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

// StockCache is the durable cache entry for the stocks widget.
type StockCache struct {
	Quotes   []StockQuote
	StoredAt time.Time
}

type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"image_url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
}

type TaskRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task is the reshaped ClickUp task served by the proxy endpoint.
// Field names mirror the proxy's JSON contract.
type Task struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	DueDate  *string  `json:"dueDate"`
	Priority *int     `json:"priority"`
	List     TaskRef  `json:"list"`
	Folder   *TaskRef `json:"folder"`
	Space    *TaskRef `json:"space"`
	URL      string   `json:"url"`
}

type EventType string

const (
	EventMeeting  EventType = "meeting"
	EventReminder EventType = "reminder"
	EventTask     EventType = "task"
)

type CalendarEvent struct {
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
	Type  EventType `json:"type"`
}

type CalendarDay struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	InMonth   bool   `json:"in_month"`
	Today     bool   `json:"today"`
	HasEvents bool   `json:"has_events"`
}

type CalendarMonth struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Weeks  [][]CalendarDay `json:"weeks"`
	Events []CalendarEvent `json:"events"`
}
