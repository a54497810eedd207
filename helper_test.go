package marketsim

import (
	"strings"
	"testing"
)

// must fails the test on error and returns v otherwise.
func must[T any](t *testing.T) func(v T, err error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return v
	}
}

// newTestMarket decodes a market from its file content.
func newTestMarket(t *testing.T, lines ...string) *Market {
	t.Helper()
	return must[*Market](t)(DecodeMarket(strings.NewReader(strings.Join(lines, "\n"))))
}

// newTestPortfolio decodes a portfolio from its file content.
func newTestPortfolio(t *testing.T, lines ...string) *Portfolio {
	t.Helper()
	return must[*Portfolio](t)(DecodePortfolio(strings.NewReader(strings.Join(lines, "\n"))))
}
