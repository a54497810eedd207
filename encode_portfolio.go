package marketsim

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// The portfolio file holds the cash balance on its first line, then one
// holding per line:
//
//	<balance>
//	<ticker> <count>
//
// Holdings with a zero count are skipped when loading but are written back
// when saving.

// errMissingBalance is reported when the balance line is missing.
var errMissingBalance = errors.New("missing balance")

// DecodePortfolio reads a portfolio from r.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	return decodePortfolio("", r)
}

// LoadPortfolio reads the portfolio file.
func LoadPortfolio(filename string) (*Portfolio, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %q for reading: %w", filename, err)
	}
	defer f.Close()

	p, err := decodePortfolio(filename, f)
	if err != nil {
		return nil, err
	}
	slog.Debug("portfolio loaded", "file", filename, "balance", p.Balance(), "shares", p.Len())
	return p, nil
}

func decodePortfolio(filename string, r io.Reader) (*Portfolio, error) {
	var p *Portfolio
	err := scanRecords(filename, r, func(fields []string) error {
		if p == nil {
			if len(fields) != 1 {
				return fmt.Errorf("expected <balance>, got %d fields", len(fields))
			}
			balance, err := ParseMoney(fields[0])
			if err != nil {
				return err
			}
			p = NewPortfolio(balance)
			return nil
		}

		if len(fields) != 2 {
			return fmt.Errorf("expected <ticker> <count>, got %d fields", len(fields))
		}
		count, err := ParseQuantity(fields[1])
		if err != nil {
			return err
		}
		if count.IsZero() {
			return nil
		}
		return p.InsertShare(fields[0], count)
	})
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &LoadError{File: filename, Line: 1, Err: errMissingBalance}
	}
	return p, nil
}

// EncodePortfolio writes the balance and every holding of p, most recent
// first, zero counts included.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	if _, err := fmt.Fprintf(w, "%s\n", p.balance.Fixed(fractionDigits)); err != nil {
		return err
	}
	for s := range p.Shares() {
		if _, err := fmt.Fprintf(w, "%s %s\n", s.ticker, s.count.Fixed(fractionDigits)); err != nil {
			return err
		}
	}
	return nil
}

// SavePortfolio writes p to the portfolio file, replacing it.
func SavePortfolio(filename string, p *Portfolio) error {
	if p == nil {
		return ErrNoPortfolio
	}
	if err := saveFile(filename, func(w io.Writer) error { return EncodePortfolio(w, p) }); err != nil {
		return err
	}
	slog.Debug("portfolio saved", "file", filename, "balance", p.Balance(), "shares", p.Len())
	return nil
}
