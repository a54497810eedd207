package cmd

import (
	"github.com/etnz/marketsim"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the command line.
func Completion() *complete.Command {
	textFiles := predict.Files("*.txt")
	tickers := complete.PredictFunc(predictTickers)

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"shell":     {Args: textFiles},
			"market":    {},
			"portfolio": {},
			"update":    {},
			"view":      {Args: tickers},
			"buy":       {Args: tickers},
			"sell":      {Args: tickers},
			"import": {Flags: map[string]complete.Predictor{
				"f":      predict.Files("*.json"),
				"quotes": predict.Something,
				"ticker": predict.Something,
				"price":  predict.Something,
				"shares": predict.Something,
			}},
			"export": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.xlsx"),
			}},
			"help": {},
		},
		Flags: map[string]complete.Predictor{
			"market-file":    textFiles,
			"portfolio-file": textFiles,
			"currency":       predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"v":              predict.Nothing,
		},
	}
}

// predictTickers lists the tickers of the default market file.
func predictTickers(prefix string) []string {
	market, err := marketsim.LoadMarket(MarketFile())
	if err != nil {
		return nil
	}
	var tickers []string
	for s := range market.Stocks() {
		tickers = append(tickers, string(s.Ticker()))
	}
	return tickers
}
