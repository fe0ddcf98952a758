package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"deskboard/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const alphaVantageBaseURL = "https://www.alphavantage.co"

// stockCallSpacing keeps the sequential symbol fetch at ~4.6 calls/min,
// under Alpha Vantage's free-tier ceiling of 5 calls/min.
const stockCallSpacing = 13 * time.Second

// AlphaVantageProvider fetches GLOBAL_QUOTE data one symbol at a time,
// with built-in rate limiting.
type AlphaVantageProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
	limiter *RateLimiter
}

func NewAlphaVantageProvider(tracer trace.Tracer, apiKey string) *AlphaVantageProvider {
	return &AlphaVantageProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: alphaVantageBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
		limiter: NewRateLimiter(1, stockCallSpacing),
	}
}

// FetchQuote fetches one symbol's global quote. An empty quote object
// (the provider's rate-limit signature) is reported as domain.ErrNoData
// so callers can skip the symbol without aborting the cycle.
func (p *AlphaVantageProvider) FetchQuote(ctx context.Context, symbol string) (*domain.StockQuote, error) {
	_, span := p.tracer.Start(ctx, "alphavantage.fetch-quote")
	defer span.End()

	endpoint := fmt.Sprintf("%s/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s",
		p.baseURL, symbol, p.apiKey)

	body, err := p.doRequest(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetch quote for %s: %w", symbol, err)
	}

	var payload struct {
		GlobalQuote map[string]string `json:"Global Quote"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse quote for %s: %w", symbol, err)
	}
	if len(payload.GlobalQuote) == 0 {
		return nil, fmt.Errorf("empty quote for %s: %w", symbol, domain.ErrNoData)
	}

	quote := payload.GlobalQuote
	sym := quote["01. symbol"]
	if sym == "" {
		sym = symbol
	}

	return &domain.StockQuote{
		Symbol:        sym,
		Price:         parseQuoteNumber(quote["05. price"]),
		Change:        parseQuoteNumber(quote["09. change"]),
		ChangePercent: parseQuoteNumber(quote["10. change percent"]),
	}, nil
}

func (p *AlphaVantageProvider) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

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
		return nil, &domain.UpstreamError{Service: "alphavantage", Status: resp.StatusCode, Body: string(body)}
	}

	return io.ReadAll(resp.Body)
}

// parseQuoteNumber parses a possibly percent-formatted numeric field,
// defaulting to 0 on anything malformed or absent.
func parseQuoteNumber(s string) float64 {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}
