package marketsim

import (
	"strings"
	"testing"
)

func TestImportQuotes(t *testing.T) {
	m := newTestMarket(t, "AAPL 150 1000")

	doc := `[
		{"ticker": "GOOG", "price": 2800.10, "shares": 500},
		{"ticker": "AAPL", "price": "175.5", "shares": "1000"}
	]`
	n, err := ImportQuotes(m, strings.NewReader(doc), DefaultQuoteQuery)
	if err != nil {
		t.Fatalf("ImportQuotes() error = %v", err)
	}
	if n != 2 {
		t.Errorf("ImportQuotes() = %d, want 2", n)
	}

	goog, ok := m.Lookup("GOOG")
	if !ok || !goog.Price().Equal(M(2800.1)) {
		t.Errorf("Lookup(GOOG) = %v, %v, want price 2800.1", goog, ok)
	}
	aapl, _ := m.Lookup("AAPL")
	if !aapl.Price().Equal(M(175.5)) {
		t.Errorf("Lookup(AAPL).Price() = %v, want the imported 175.5", aapl.Price())
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestImportQuotes_CustomQuery(t *testing.T) {
	m := NewMarket()
	doc := `{"data": {"quotes": [
		{"symbol": "MSFT", "last": {"value": 333.25}, "float": 42},
		{"symbol": "IBMX", "last": {"value": 10}, "float": 7}
	]}}`
	q := QuoteQuery{
		Quotes:      "$.data.quotes[*]",
		Ticker:      "$.symbol",
		Price:       "$.last.value",
		TotalShares: "$.float",
	}
	if _, err := ImportQuotes(m, strings.NewReader(doc), q); err != nil {
		t.Fatalf("ImportQuotes() error = %v", err)
	}
	var got []string
	for s := range m.Stocks() {
		got = append(got, string(s.Ticker()))
	}
	if strings.Join(got, ",") != "IBMX,MSFT" {
		t.Errorf("Stocks() = %v, want most recent first [IBMX MSFT]", got)
	}
}

func TestImportQuotes_Atomic(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"Not json", `not json`},
		{"Missing price", `[{"ticker": "GOOG", "price": 10, "shares": 5}, {"ticker": "MSFT", "shares": 5}]`},
		{"Invalid price", `[{"ticker": "GOOG", "price": 10, "shares": 5}, {"ticker": "MSFT", "price": 0, "shares": 5}]`},
		{"Wrong type", `[{"ticker": "GOOG", "price": {"last": 10}, "shares": 5}]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMarket(t, "AAPL 150 1000")
			if _, err := ImportQuotes(m, strings.NewReader(tc.doc), DefaultQuoteQuery); err == nil {
				t.Fatalf("ImportQuotes() succeeded, want an error")
			}
			if m.Len() != 1 {
				t.Errorf("failed ImportQuotes() changed the market, Len() = %d", m.Len())
			}
		})
	}
}
