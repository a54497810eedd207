// Package report exports the market and the portfolio as an XLSX workbook.
package report

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/etnz/marketsim"
	"github.com/xuri/excelize/v2"
)

const (
	MarketSheet    = "Market"
	PortfolioSheet = "Portfolio"
)

// Generate builds a workbook with one sheet for the market and one for the
// portfolio and returns its bytes.
func Generate(m *marketsim.Market, p *marketsim.Portfolio) ([]byte, error) {
	if m == nil || p == nil {
		return nil, errors.New("report needs a market and a portfolio")
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("got error while closing workbook", "err", err)
		}
	}()

	header, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#cccccc"}},
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create header style: %w", err)
	}

	if err := fillMarket(f, m, header); err != nil {
		return nil, err
	}
	if err := fillPortfolio(f, m, p, header); err != nil {
		return nil, err
	}

	// drop the default "Sheet1"
	if err := f.DeleteSheet("Sheet1"); err != nil {
		slog.Error("got error while deleting Sheet1", "err", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("cannot write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// setRow writes values in the cells of row, starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("cannot set cell %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}

func fillMarket(f *excelize.File, m *marketsim.Market, header int) error {
	if _, err := f.NewSheet(MarketSheet); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", MarketSheet, err)
	}
	if err := setRow(f, MarketSheet, 1, "Ticker", "Total Shares", "Price", "Market Cap"); err != nil {
		return err
	}
	if err := f.SetCellStyle(MarketSheet, "A1", "D1", header); err != nil {
		return fmt.Errorf("cannot apply header style: %w", err)
	}

	row := 2
	for s := range m.Stocks() {
		err := setRow(f, MarketSheet, row,
			string(s.Ticker()),
			s.TotalShares().Decimal().InexactFloat64(),
			s.Price().AsFloat(),
			s.Cap().AsFloat(),
		)
		if err != nil {
			return err
		}
		row++
	}
	return nil
}

func fillPortfolio(f *excelize.File, m *marketsim.Market, p *marketsim.Portfolio, header int) error {
	if _, err := f.NewSheet(PortfolioSheet); err != nil {
		return fmt.Errorf("cannot create sheet %q: %w", PortfolioSheet, err)
	}
	if err := setRow(f, PortfolioSheet, 1, "Balance", p.Balance().AsFloat()); err != nil {
		return err
	}
	if err := setRow(f, PortfolioSheet, 3, "Ticker", "Shares", "Price", "Value"); err != nil {
		return err
	}
	if err := f.SetCellStyle(PortfolioSheet, "A3", "D3", header); err != nil {
		return fmt.Errorf("cannot apply header style: %w", err)
	}

	row := 4
	for s := range p.Shares() {
		values := []any{string(s.Ticker()), s.Count().Decimal().InexactFloat64()}
		// unlisted holdings have no price
		if stock, ok := m.Lookup(string(s.Ticker())); ok {
			values = append(values, stock.Price().AsFloat(), stock.Price().Mul(s.Count()).AsFloat())
		}
		if err := setRow(f, PortfolioSheet, row, values...); err != nil {
			return err
		}
		row++
	}
	return nil
}
