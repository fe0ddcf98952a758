package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"deskboard/internal/cache"
	"deskboard/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// stockCacheMaxAge is the freshness window for the durable quote cache.
const stockCacheMaxAge = 5 * time.Minute

type QuoteProvider interface {
	FetchQuote(ctx context.Context, symbol string) (*domain.StockQuote, error)
}

// StockService retrieves quotes for the fixed watchlist, one provider
// call per symbol behind the provider's rate limiter, with a durable
// cache in front so a fresh payload costs zero network calls.
type StockService struct {
	tracer   trace.Tracer
	provider QuoteProvider
	store    cache.Store
	apiKey   string
	symbols  []string
}

func NewStockService(tracer trace.Tracer, p QuoteProvider, store cache.Store, apiKey string) *StockService {
	return &StockService{
		tracer:   tracer,
		provider: p,
		store:    store,
		apiKey:   apiKey,
		symbols:  domain.StockSymbols,
	}
}

// GetQuotes runs one stocks fetch cycle. force invalidates the cache
// first, so a manual refresh always walks the full symbol list.
func (s *StockService) GetQuotes(ctx context.Context, force bool) ([]domain.StockQuote, error) {
	ctx, span := s.tracer.Start(ctx, "stock-service.get-quotes")
	defer span.End()

	if s.apiKey == "" {
		return nil, domain.NewConfigError("Alpha Vantage API key not configured")
	}

	if force {
		if err := s.store.Delete(ctx, cache.StocksKey, cache.StocksTimeKey); err != nil {
			log.Printf("stocks cache invalidate error: %v", err)
		}
	} else if quotes := s.readCache(ctx); quotes != nil {
		return quotes, nil
	}

	quotes := make([]domain.StockQuote, 0, len(s.symbols))
	for _, symbol := range s.symbols {
		quote, err := s.provider.FetchQuote(ctx, symbol)
		if err != nil {
			// Partial-failure policy: a bad symbol is skipped, not fatal.
			log.Printf("stocks: skipping %s: %v", symbol, err)
			continue
		}
		quotes = append(quotes, *quote)
	}

	if len(quotes) == 0 {
		// Cache is deliberately left alone here.
		return nil, fmt.Errorf("no stock data available, check your API key or try again later: %w", domain.ErrNoData)
	}

	s.writeCache(ctx, quotes)
	return quotes, nil
}

// readCache returns the cached payload if it is younger than
// stockCacheMaxAge, nil otherwise.
func (s *StockService) readCache(ctx context.Context) []domain.StockQuote {
	stampRaw, err := s.store.Get(ctx, cache.StocksTimeKey)
	if err != nil {
		if err != cache.ErrMiss {
			log.Printf("stocks cache read error: %v", err)
		}
		return nil
	}
	stampMs, err := strconv.ParseInt(string(stampRaw), 10, 64)
	if err != nil {
		return nil
	}
	if time.Since(time.UnixMilli(stampMs)) >= stockCacheMaxAge {
		return nil
	}

	payload, err := s.store.Get(ctx, cache.StocksKey)
	if err != nil {
		return nil
	}
	var quotes []domain.StockQuote
	if err := json.Unmarshal(payload, &quotes); err != nil {
		log.Printf("stocks cache decode error: %v", err)
		return nil
	}
	if len(quotes) == 0 {
		return nil
	}
	return quotes
}

func (s *StockService) writeCache(ctx context.Context, quotes []domain.StockQuote) {
	payload, err := json.Marshal(quotes)
	if err != nil {
		return
	}
	if err := s.store.Set(ctx, cache.StocksKey, payload, 0); err != nil {
		log.Printf("stocks cache write error: %v", err)
		return
	}
	stamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := s.store.Set(ctx, cache.StocksTimeKey, []byte(stamp), 0); err != nil {
		log.Printf("stocks cache stamp write error: %v", err)
	}
}
