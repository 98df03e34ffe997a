package assets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"birrieria-admin/internal/platform/logger"
)

var ErrNotConfigured = errors.New("assets: logo url not configured")

// Fetcher descarga el logo del membrete desde el almacenamiento público
// y lo cachea en memoria: el logo cambia casi nunca y los documentos se
// generan seguido.
type Fetcher struct {
	client  *resty.Client
	logoURL string
	log     logger.Logger
	ttl     time.Duration

	mu        sync.RWMutex
	cached    []byte
	fetchedAt time.Time
}

type Config struct {
	LogoURL string
	Timeout time.Duration
	TTL     time.Duration
}

func NewFetcher(cfg Config, log logger.Logger) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)

	return &Fetcher{
		client:  client,
		logoURL: strings.TrimSpace(cfg.LogoURL),
		log:     log,
		ttl:     ttl,
	}
}

func (f *Fetcher) Logo(ctx context.Context) ([]byte, error) {
	if f.logoURL == "" {
		return nil, ErrNotConfigured
	}

	f.mu.RLock()
	if f.cached != nil && time.Since(f.fetchedAt) < f.ttl {
		data := f.cached
		f.mu.RUnlock()
		return data, nil
	}
	f.mu.RUnlock()

	resp, err := f.client.R().SetContext(ctx).Get(f.logoURL)
	if err != nil {
		return nil, fmt.Errorf("assets: descargar logo: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("assets: descargar logo: status %d", resp.StatusCode())
	}
	data := resp.Body()
	if len(data) == 0 {
		return nil, errors.New("assets: logo vacío")
	}

	f.mu.Lock()
	f.cached = data
	f.fetchedAt = time.Now()
	f.mu.Unlock()

	f.log.Debug("logo descargado", map[string]any{"bytes": len(data)})
	return data, nil
}
