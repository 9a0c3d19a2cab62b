package pricing

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/stellarsoil/marketplace/pkg/logger"
)

// PriceBand is the market price range for a crop in ₹ per kg
type PriceBand struct {
	Min     float64
	Max     float64
	Current float64
}

// fallbackPrices carries reference mandi prices for common produce, used when
// no fresher source is cached. Values are ₹/kg.
var fallbackPrices = map[string]PriceBand{
	"tomato":      {Min: 20, Max: 80, Current: 45},
	"onion":       {Min: 15, Max: 60, Current: 35},
	"potato":      {Min: 12, Max: 40, Current: 25},
	"carrot":      {Min: 18, Max: 50, Current: 30},
	"cabbage":     {Min: 8, Max: 25, Current: 15},
	"cauliflower": {Min: 15, Max: 45, Current: 25},
	"brinjal":     {Min: 20, Max: 60, Current: 35},
	"ladyfinger":  {Min: 25, Max: 70, Current: 40},
	"green chili": {Min: 30, Max: 120, Current: 60},
	"ginger":      {Min: 80, Max: 200, Current: 120},
	"garlic":      {Min: 100, Max: 300, Current: 180},
	"spinach":     {Min: 15, Max: 40, Current: 25},
	"coriander":   {Min: 40, Max: 150, Current: 80},
	"mint":        {Min: 50, Max: 200, Current: 100},
	"apple":       {Min: 80, Max: 200, Current: 120},
	"banana":      {Min: 30, Max: 80, Current: 50},
	"orange":      {Min: 40, Max: 120, Current: 70},
	"grapes":      {Min: 60, Max: 150, Current: 90},
	"mango":       {Min: 50, Max: 150, Current: 80},
	"papaya":      {Min: 20, Max: 60, Current: 35},
	"watermelon":  {Min: 8, Max: 25, Current: 15},
	"pomegranate": {Min: 100, Max: 250, Current: 150},
	"lemon":       {Min: 40, Max: 100, Current: 60},
	"guava":       {Min: 30, Max: 80, Current: 50},
}

// defaultBand is used for crops outside the reference table
var defaultBand = PriceBand{Min: 20, Max: 80, Current: 40}

// Service recommends listing prices from cached market bands. Regional price
// feeds can be layered in via SetBand without touching callers.
type Service struct {
	mu       sync.RWMutex
	bands    map[string]bandEntry
	cacheTTL time.Duration
	logger   logger.Logger
}

type bandEntry struct {
	band    PriceBand
	fetched time.Time
}

// NewService creates a pricing Service with a one-hour cache window
func NewService(log logger.Logger) *Service {
	return &Service{
		bands:    make(map[string]bandEntry),
		cacheTTL: time.Hour,
		logger:   log,
	}
}

// SuggestPrice returns the recommended per-kg listing price for crop. The
// region parameter is reserved for regional feeds; it currently selects the
// national band.
func (s *Service) SuggestPrice(_ context.Context, crop, region string) (float64, error) {
	band := s.Band(crop)
	_ = region
	return band.Current, nil
}

// Band returns the current market band for crop, serving from cache while
// fresh and falling back to the reference table.
func (s *Service) Band(crop string) PriceBand {
	key := strings.ToLower(strings.TrimSpace(crop))

	s.mu.RLock()
	entry, ok := s.bands[key]
	s.mu.RUnlock()
	if ok && time.Since(entry.fetched) < s.cacheTTL {
		return entry.band
	}

	band, ok := fallbackPrices[key]
	if !ok {
		band = defaultBand
	}

	s.mu.Lock()
	s.bands[key] = bandEntry{band: band, fetched: time.Now()}
	s.mu.Unlock()

	return band
}

// SetBand injects a band for crop, e.g. from a live mandi feed
func (s *Service) SetBand(crop string, band PriceBand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bands[strings.ToLower(strings.TrimSpace(crop))] = bandEntry{band: band, fetched: time.Now()}
}
