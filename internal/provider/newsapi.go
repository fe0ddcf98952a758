package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"deskboard/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const newsAPIBaseURL = "https://newsapi.org/v2"

// NewsProvider fetches top headlines from NewsAPI.
type NewsProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewNewsProvider(tracer trace.Tracer, apiKey string) *NewsProvider {
	return &NewsProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: newsAPIBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

type HeadlinesResponse struct {
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// TopHeadlines fetches pageSize headlines for a country code.
func (p *NewsProvider) TopHeadlines(ctx context.Context, country string, pageSize int) (*HeadlinesResponse, error) {
	_, span := p.tracer.Start(ctx, "newsapi.top-headlines")
	defer span.End()

	endpoint := fmt.Sprintf("%s/top-headlines?country=%s&pageSize=%d&apiKey=%s",
		p.baseURL, country, pageSize, p.apiKey)

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
		return nil, &domain.UpstreamError{Service: "newsapi", Status: resp.StatusCode, Body: string(body)}
	}

	var payload HeadlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parse headlines response: %w", err)
	}
	return &payload, nil
}
