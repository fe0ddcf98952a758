package service

import (
	"context"
	"testing"
	"time"

	"deskboard/internal/domain"
	"deskboard/internal/provider"
)

type mockHeadlineProvider struct {
	resp  *provider.HeadlinesResponse
	err   error
	calls int
}

func (m *mockHeadlineProvider) TopHeadlines(ctx context.Context, country string, pageSize int) (*provider.HeadlinesResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func headlines(titles ...string) *provider.HeadlinesResponse {
	resp := &provider.HeadlinesResponse{}
	for _, title := range titles {
		article := struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			URLToImage  string `json:"urlToImage"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		}{Title: title, Description: "desc", URL: "https://example.com", URLToImage: "https://example.com/img.jpg", PublishedAt: "2026-08-28T09:00:00Z"}
		article.Source.Name = "Example Times"
		resp.Articles = append(resp.Articles, article)
	}
	return resp
}

func TestNewsServiceMissingKeySkipsNetwork(t *testing.T) {
	t.Parallel()

	mock := &mockHeadlineProvider{}
	svc := NewNewsService(testTracer, mock, "", "us", 5)

	_, err := svc.GetHeadlines(context.Background())
	if !domain.IsConfig(err) {
		t.Fatalf("expected config error, got %v", err)
	}
	if err.Error() != "News API key not found" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if mock.calls != 0 {
		t.Fatal("no network call should be attempted without a key")
	}
}

func TestNewsServiceTransforms(t *testing.T) {
	t.Parallel()

	mock := &mockHeadlineProvider{resp: headlines("One", "Two")}
	svc := NewNewsService(testTracer, mock, "key", "us", 5)

	articles, err := svc.GetHeadlines(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].ID != "1" || articles[1].ID != "2" {
		t.Fatalf("ids should be 1-based positions: %+v", articles)
	}
	if articles[0].Category != "News" || articles[0].Source != "Example Times" {
		t.Fatalf("unexpected article: %+v", articles[0])
	}
	want := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	if !articles[0].PublishedAt.Equal(want) {
		t.Fatalf("unexpected publishedAt: %v", articles[0].PublishedAt)
	}
}

func TestNewsServiceFillsGaps(t *testing.T) {
	t.Parallel()

	resp := &provider.HeadlinesResponse{}
	resp.Articles = append(resp.Articles, struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		URLToImage  string `json:"urlToImage"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	}{})

	mock := &mockHeadlineProvider{resp: resp}
	svc := NewNewsService(testTracer, mock, "key", "us", 5)

	articles, err := svc.GetHeadlines(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	article := articles[0]
	if article.Title != "No title" || article.Description != "No description available" {
		t.Fatalf("missing text fields should get fallbacks: %+v", article)
	}
	if article.URL != "#" || article.ImageURL != fallbackNewsImage || article.Source != "Unknown" {
		t.Fatalf("missing link fields should get fallbacks: %+v", article)
	}
	if article.PublishedAt.IsZero() {
		t.Fatal("unparsable publishedAt should default to now")
	}
}

func TestTimeAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	cases := []struct {
		age  time.Duration
		want string
	}{
		{20 * time.Minute, "Just now"},
		{90 * time.Minute, "1 hour ago"},
		{5 * time.Hour, "5 hours ago"},
		{30 * time.Hour, "30 hours ago"},
	}
	for _, c := range cases {
		if got := TimeAgo(now, now.Add(-c.age)); got != c.want {
			t.Fatalf("age %v: got %q, want %q", c.age, got, c.want)
		}
	}
}
