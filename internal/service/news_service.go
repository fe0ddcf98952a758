package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"deskboard/internal/domain"
	"deskboard/internal/provider"

	"go.opentelemetry.io/otel/trace"
)

const fallbackNewsImage = "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400"

type HeadlineProvider interface {
	TopHeadlines(ctx context.Context, country string, pageSize int) (*provider.HeadlinesResponse, error)
}

// NewsService fetches top headlines and fills the gaps upstream articles
// routinely leave (missing descriptions, images, source names).
type NewsService struct {
	tracer   trace.Tracer
	provider HeadlineProvider
	apiKey   string
	country  string
	pageSize int
}

func NewNewsService(tracer trace.Tracer, p HeadlineProvider, apiKey, country string, pageSize int) *NewsService {
	return &NewsService{
		tracer:   tracer,
		provider: p,
		apiKey:   apiKey,
		country:  country,
		pageSize: pageSize,
	}
}

func (s *NewsService) GetHeadlines(ctx context.Context) ([]domain.NewsArticle, error) {
	ctx, span := s.tracer.Start(ctx, "news-service.get-headlines")
	defer span.End()

	if s.apiKey == "" {
		return nil, domain.NewConfigError("News API key not found")
	}

	resp, err := s.provider.TopHeadlines(ctx, s.country, s.pageSize)
	if err != nil {
		return nil, err
	}

	articles := make([]domain.NewsArticle, 0, len(resp.Articles))
	for i, raw := range resp.Articles {
		article := domain.NewsArticle{
			ID:          strconv.Itoa(i + 1),
			Title:       raw.Title,
			Description: raw.Description,
			URL:         raw.URL,
			ImageURL:    raw.URLToImage,
			Source:      raw.Source.Name,
			Category:    "News",
		}
		if article.Title == "" {
			article.Title = "No title"
		}
		if article.Description == "" {
			article.Description = "No description available"
		}
		if article.URL == "" {
			article.URL = "#"
		}
		if article.ImageURL == "" {
			article.ImageURL = fallbackNewsImage
		}
		if article.Source == "" {
			article.Source = "Unknown"
		}
		published, err := time.Parse(time.RFC3339, raw.PublishedAt)
		if err != nil {
			published = time.Now()
		}
		article.PublishedAt = published
		articles = append(articles, article)
	}
	return articles, nil
}

// TimeAgo renders a publication timestamp in whole elapsed hours.
func TimeAgo(now, published time.Time) string {
	hours := int(now.Sub(published).Hours())
	switch {
	case hours < 1:
		return "Just now"
	case hours == 1:
		return "1 hour ago"
	default:
		return fmt.Sprintf("%d hours ago", hours)
	}
}
