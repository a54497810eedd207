package marketsim

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/PaesslerAG/jsonpath"
)

// QuoteQuery locates stock quotes inside an arbitrary JSON document.
//
// Quotes selects the list of quote objects in the document, the other paths
// are evaluated on each quote object.
type QuoteQuery struct {
	Quotes      string
	Ticker      string
	Price       string
	TotalShares string
}

// DefaultQuoteQuery reads a top level array of
// {"ticker": ..., "price": ..., "shares": ...} objects.
var DefaultQuoteQuery = QuoteQuery{
	Quotes:      "$[*]",
	Ticker:      "$.ticker",
	Price:       "$.price",
	TotalShares: "$.shares",
}

// ImportQuotes inserts into m every quote found in the JSON document r.
// Either all quotes are inserted or none is.
func ImportQuotes(m *Market, r io.Reader, q QuoteQuery) (int, error) {
	if m == nil {
		return 0, ErrNoMarket
	}
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep numbers exact for decimal parsing
	var jobj any
	if err := dec.Decode(&jobj); err != nil {
		return 0, fmt.Errorf("import error: not a correct json: %w", err)
	}

	jval, err := jsonpath.Get(q.Quotes, jobj)
	if err != nil {
		return 0, fmt.Errorf("import error: cannot evaluate %q: %w", q.Quotes, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		// a path without wildcard returns the single object itself
		jlist = []any{jval}
	}

	staged := NewMarket()
	for i, jquote := range jlist {
		ticker, err := quoteField(jquote, q.Ticker)
		if err != nil {
			return 0, fmt.Errorf("import error: quote #%d: %w", i, err)
		}
		sprice, err := quoteField(jquote, q.Price)
		if err != nil {
			return 0, fmt.Errorf("import error: quote #%d: %w", i, err)
		}
		sshares, err := quoteField(jquote, q.TotalShares)
		if err != nil {
			return 0, fmt.Errorf("import error: quote #%d: %w", i, err)
		}
		price, err := ParseMoney(sprice)
		if err != nil {
			return 0, fmt.Errorf("import error: quote #%d: %w", i, err)
		}
		shares, err := ParseQuantity(sshares)
		if err != nil {
			return 0, fmt.Errorf("import error: quote #%d: %w", i, err)
		}
		if err := staged.Insert(ticker, price, shares); err != nil {
			return 0, fmt.Errorf("import error: quote #%d: %w", i, err)
		}
	}

	// staged is most recent first, replay it oldest first.
	for i := len(staged.stocks) - 1; i >= 0; i-- {
		s := staged.stocks[i]
		if err := m.Insert(string(s.ticker), s.price, s.totalShares); err != nil {
			return 0, err
		}
	}
	slog.Debug("quotes imported", "count", len(staged.stocks))
	return len(staged.stocks), nil
}

// quoteField evaluates path on a quote and returns its value as text.
func quoteField(jquote any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jquote)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("property %q must be a string or a number, got %T", path, jval)
	}
}
