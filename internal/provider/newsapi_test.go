package provider

import (
	"context"
	"net/http"
	"testing"

	"deskboard/internal/domain"
)

func TestTopHeadlines(t *testing.T) {
	p := NewNewsProvider(testTracer, "newskey")
	p.baseURL = "https://example.com"
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/top-headlines" {
			t.Fatalf("unexpected path: %s", req.URL.Path)
		}
		q := req.URL.Query()
		if q.Get("country") != "us" || q.Get("pageSize") != "5" || q.Get("apiKey") != "newskey" {
			t.Fatalf("unexpected query: %s", req.URL.RawQuery)
		}
		body := `{"articles":[
			{"title":"Headline one","description":"Desc","url":"https://example.com/1",
			 "urlToImage":"https://example.com/1.jpg","publishedAt":"2026-08-28T09:00:00Z",
			 "source":{"name":"Example Times"}},
			{"title":"Headline two","url":"https://example.com/2","publishedAt":"2026-08-28T07:00:00Z",
			 "source":{}}
		]}`
		return jsonResponse(http.StatusOK, body), nil
	})}

	resp, err := p.TopHeadlines(context.Background(), "us", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(resp.Articles))
	}
	if resp.Articles[0].Source.Name != "Example Times" || resp.Articles[1].Description != "" {
		t.Fatalf("unexpected articles: %+v", resp.Articles)
	}
}

func TestTopHeadlinesUpstreamError(t *testing.T) {
	p := NewNewsProvider(testTracer, "bad")
	p.baseURL = "https://example.com"
	p.client = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, `{"status":"error","code":"apiKeyInvalid"}`), nil
	})}

	_, err := p.TopHeadlines(context.Background(), "us", 5)
	ue, ok := domain.IsUpstream(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Status != http.StatusUnauthorized || ue.Service != "newsapi" {
		t.Fatalf("unexpected upstream error: %+v", ue)
	}
}
