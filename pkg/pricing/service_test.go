package pricing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}

func TestSuggestPriceKnownCrop(t *testing.T) {
	s := NewService(nopLogger{})

	price, err := s.SuggestPrice(context.Background(), "tomato", "")
	require.NoError(t, err)
	require.Equal(t, 45.0, price)
}

func TestSuggestPriceNormalizesName(t *testing.T) {
	s := NewService(nopLogger{})

	price, err := s.SuggestPrice(context.Background(), "  Onion ", "")
	require.NoError(t, err)
	require.Equal(t, 35.0, price)
}

func TestSuggestPriceUnknownCropFallsBack(t *testing.T) {
	s := NewService(nopLogger{})

	price, err := s.SuggestPrice(context.Background(), "dragonfruit", "")
	require.NoError(t, err)
	require.Equal(t, defaultBand.Current, price)
}

func TestSetBandOverridesReference(t *testing.T) {
	s := NewService(nopLogger{})
	s.SetBand("tomato", PriceBand{Min: 30, Max: 90, Current: 55})

	price, err := s.SuggestPrice(context.Background(), "tomato", "")
	require.NoError(t, err)
	require.Equal(t, 55.0, price)

	band := s.Band("tomato")
	require.Equal(t, 30.0, band.Min)
	require.Equal(t, 90.0, band.Max)
}
