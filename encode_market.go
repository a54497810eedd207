package marketsim

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// The market file holds one stock per line:
//
//	<ticker> <price> <total shares>

// DecodeMarket reads a market from r.
func DecodeMarket(r io.Reader) (*Market, error) {
	return decodeMarket("", r)
}

// LoadMarket reads the market file.
func LoadMarket(filename string) (*Market, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()

	m, err := decodeMarket(filename, f)
	if err != nil {
		return nil, err
	}
	slog.Debug("market loaded", "file", filename, "stocks", m.Len())
	return m, nil
}

func decodeMarket(filename string, r io.Reader) (*Market, error) {
	m := NewMarket()
	err := scanRecords(filename, r, func(fields []string) error {
		if len(fields) != 3 {
			return fmt.Errorf("expected <ticker> <price> <total shares>, got %d fields", len(fields))
		}
		price, err := ParseMoney(fields[1])
		if err != nil {
			return err
		}
		totalShares, err := ParseQuantity(fields[2])
		if err != nil {
			return err
		}
		return m.Insert(fields[0], price, totalShares)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// EncodeMarket writes every stock of m, most recent first.
func EncodeMarket(w io.Writer, m *Market) error {
	for s := range m.Stocks() {
		if _, err := fmt.Fprintf(w, "%s %s %s\n", s.ticker, s.price.Fixed(fractionDigits), s.totalShares.Fixed(fractionDigits)); err != nil {
			return err
		}
	}
	return nil
}

// SaveMarket writes m to the market file, replacing it.
func SaveMarket(filename string, m *Market) error {
	if m == nil {
		return ErrNoMarket
	}
	if err := saveFile(filename, func(w io.Writer) error { return EncodeMarket(w, m) }); err != nil {
		return err
	}
	slog.Debug("market saved", "file", filename, "stocks", m.Len())
	return nil
}
